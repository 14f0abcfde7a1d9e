// Package cli provides the command-line interface for dbtcheck.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbtcheck/dbtcheck/internal/cli/commands"
	"github.com/dbtcheck/dbtcheck/internal/cli/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbtcheck",
		Short: "dbtcheck - Consistency checks for dbt projects",
		Long: `dbtcheck runs consistency checks against the schema files of a dbt
project. Checks read the project's schema YAML files and its compiled
manifest, report what they find, and exit non-zero on failure so they
can gate commits and CI runs.`,
		Version: commands.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			cmd.SetContext(context.WithValue(cmd.Context(), config.LoggerKey(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./dbtcheck.yaml)")
	rootCmd.PersistentFlags().String("project-dir", "", "Path to the dbt project root")
	rootCmd.PersistentFlags().String("manifest", "", "Path to the dbt manifest (default: target/manifest.json)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|markdown|json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("no-tracking", false, "Disable local run tracking")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewColumnDescCommand())
	rootCmd.AddCommand(commands.NewModelDescCommand())
	rootCmd.AddCommand(commands.NewHooksCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for dbtcheck.

To load completions:

Bash:
  $ source <(dbtcheck completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ dbtcheck completion bash > /etc/bash_completion.d/dbtcheck
  # macOS:
  $ dbtcheck completion bash > $(brew --prefix)/etc/bash_completion.d/dbtcheck

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ dbtcheck completion zsh > "${fpath[1]}/_dbtcheck"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ dbtcheck completion fish | source

  # To load completions for each session, execute once:
  $ dbtcheck completion fish > ~/.config/fish/completions/dbtcheck.fish

PowerShell:
  PS> dbtcheck completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> dbtcheck completion powershell > dbtcheck.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
