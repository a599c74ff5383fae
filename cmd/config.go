package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/config"
	"github.com/grovetools/semcommit/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Shows the configuration used for classification after merging:
1. Global config ($XDG_CONFIG_HOME/semcommit/config.yml)
2. Project config (.semcommit.yml, .semcommit.yaml, semcommit.yml or .semcommit.toml)
Built-in defaults apply when neither exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := resolveDir(dir)
			if err != nil {
				return err
			}

			cfg, err := cli.LoadConfig(cmd, start)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					*config.Config
					Extensions map[string]interface{} `json:"extensions,omitempty"`
				}{cfg, cfg.Extensions})
			}

			source := cli.GetOptions(cmd).ConfigFile
			if source == "" {
				if path, err := config.FindConfigFile(start); err == nil {
					source = path
				}
			}
			if source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# Source: %s\n", source)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# No project configuration found")
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to resolve the configuration from")

	return cmd
}

func NewSchemaCmd() *cobra.Command {
	var (
		output        string
		loggingSchema bool
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generate := config.GenerateSchema
			if loggingSchema {
				generate = logging.GenerateSchema
			}

			data, err := generate()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}

			if output != "" {
				if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
					return fmt.Errorf("failed to write schema: %w", err)
				}
				cli.GetLogger(cmd).WithField("path", output).Info("Wrote configuration schema")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the schema to a file instead of stdout")
	cmd.Flags().BoolVar(&loggingSchema, "logging", false, "Print the schema of the logging section instead")

	return cmd
}
