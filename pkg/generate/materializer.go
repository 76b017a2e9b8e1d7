package generate

import (
	"os"
	"os/exec"

	"github.com/arthur-debert/vargen/pkg/logging"
)

// Materializer instantiates a template payload into a destination
// directory. Defines are passed as `key=value` strings with no escaping.
// vargen computes what to generate and where; how files get copied and
// placeholders substituted is entirely the collaborator's business.
type Materializer interface {
	Materialize(templateDir string, defines []string, destDir string, overwrite, silent bool) error
}

// CargoGenerate is the default Materializer. It shells out to the
// cargo-generate binary, which consumes the same descriptor files the
// discovery layer reads.
type CargoGenerate struct {
	// Bin is the binary to invoke, "cargo-generate" when empty
	Bin string
}

// The template name is mandatory for cargo-generate but irrelevant here:
// output paths are fully determined by the variant.
const ignoredName = "name-is-ignored"

// Materialize runs cargo-generate against the template directory.
func (c *CargoGenerate) Materialize(templateDir string, defines []string, destDir string, overwrite, silent bool) error {
	bin := c.Bin
	if bin == "" {
		bin = "cargo-generate"
	}

	args := []string{
		"generate",
		"--path", templateDir,
		"--name", ignoredName,
		"--init",
		"--destination", destDir,
	}
	if overwrite {
		args = append(args, "--overwrite")
	}
	if silent {
		args = append(args, "--silent")
	}
	for _, define := range defines {
		args = append(args, "--define", define)
	}

	logging.LogCommand(bin, args)

	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
