// Package execute runs an optional caller-supplied command against every
// generated output directory, aggregating failures instead of stopping at
// the first one.
package execute

import (
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/vargen/pkg/errors"
	"github.com/arthur-debert/vargen/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes the post-generation command once per output directory.
type Runner struct {
	// Command is the raw command string; empty means no-op. It is split
	// on whitespace, not shell-parsed: no quoting or escaping.
	Command string

	Logger zerolog.Logger
}

// New creates a runner for the given command string
func New(command string) *Runner {
	return &Runner{
		Command: command,
		Logger:  logging.GetLogger("execute"),
	}
}

// Run invokes the command in every directory, each time with that
// directory as the working directory. Every directory is attempted even
// when earlier ones fail; a single error reporting the failure count is
// returned at the end if any invocation failed to spawn or exited
// non-zero.
func (r *Runner) Run(dirs []string) error {
	fields := strings.Fields(r.Command)
	if len(fields) == 0 {
		return nil
	}
	program, args := fields[0], fields[1:]

	failed := 0
	for _, dir := range dirs {
		cmd := exec.Command(program, args...)
		cmd.Dir = dir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		r.Logger.Info().
			Str("command", program).
			Strs("args", args).
			Str("dir", dir).
			Msg("Spawning process")

		if err := cmd.Run(); err != nil {
			failed++
			r.Logger.Error().
				Err(err).
				Str("dir", dir).
				Msg("Post-generation command failed")
		}
	}

	if failed > 0 {
		return errors.Newf(errors.ErrExecute, "%d of %d post-generation commands failed", failed, len(dirs)).
			WithDetail("command", r.Command)
	}
	return nil
}
