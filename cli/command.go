package cli

import (
	"os"

	"github.com/grovetools/semcommit/config"
	"github.com/grovetools/semcommit/errors"
	"github.com/grovetools/semcommit/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for semcommit commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard persistent flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a .semcommit.yml or .semcommit.toml file")

	return cmd
}

// GetLogger returns the component logger adjusted by the command flags
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("semcommit")

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		// All levels go to stderr from here, which the warn-only stderr hook
		// would repeat.
		entry.Logger.ReplaceHooks(make(logrus.LevelHooks))
		entry.Logger.SetLevel(logrus.DebugLevel)
		entry.Logger.SetOutput(cmd.ErrOrStderr())
	}

	return entry
}

// MarkUsageErrors tags flag parsing and argument validation failures of cmd
// and its subcommands with ErrCodeInvalidInput so they exit with ExitUsage.
func MarkUsageErrors(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(usageError)

	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return usageError(c, err)
			}
			return nil
		}
	}

	for _, sub := range cmd.Commands() {
		MarkUsageErrors(sub)
	}
}

func usageError(cmd *cobra.Command, err error) error {
	return errors.InvalidInput(err.Error()).WithDetail("command", cmd.CommandPath())
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig loads the file named by --config, or else the configuration
// found from dir upward. Defaults are used when nothing is found.
func LoadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}

	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}

	return config.LoadOrDefault(dir, GetLogger(cmd).Logger)
}
