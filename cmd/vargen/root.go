package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/vargen/internal/version"
	"github.com/arthur-debert/vargen/pkg/logging"
	"github.com/arthur-debert/vargen/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity    int
	outputFormat string

	rootCmd = &cobra.Command{
		Use:   "vargen",
		Short: "Expand parameterized code-generation templates into all their variants",
		Long: `vargen discovers named code-generation templates, computes the
combinatorial set of placeholder assignments each one declares, and drives
an external templating engine (cargo-generate) to materialize every variant
into its own output directory.

Filter tokens narrow the set: a token matching a template name restricts
generation to that template, any other token selects a single placeholder
choice. Unmatched tokens are an error, never silently ignored.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			configureOutput()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format (auto, term, text, json)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// configureOutput disables pterm styling when the detected or requested
// format is plain text
func configureOutput() {
	format, err := ui.ParseFormat(outputFormat)
	if err != nil {
		log.Warn().Err(err).Msg("Unknown format, falling back to auto")
		format = ui.FormatAuto
	}
	if format.Resolve(os.Stdout) != ui.FormatTerminal {
		pterm.DisableColor()
		pterm.DisableStyling()
	}
}

// resolvedFormat returns the effective output format for the current run
func resolvedFormat() ui.Format {
	format, err := ui.ParseFormat(outputFormat)
	if err != nil {
		format = ui.FormatAuto
	}
	return format.Resolve(os.Stdout)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vargen version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(vargen completion bash)

Zsh:
  $ vargen completion zsh > "${fpath[1]}/_vargen"

Fish:
  $ vargen completion fish | source

PowerShell:
  PS> vargen completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
