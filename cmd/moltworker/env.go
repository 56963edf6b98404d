package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanboompow/moltworker/pkg/configfile"
	"github.com/vanboompow/moltworker/pkg/sandbox"
)

func envCmd() *cobra.Command {
	var (
		format  string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the container environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configfile.NewManager()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			env, err := hostEnvironment(envFile, cfg.Environment())
			if err != nil {
				return err
			}

			out := sandbox.BuildEnv(cmd.Context(), env)
			slog.Debug("Built container environment", "vars", len(out))

			return sandbox.Render(os.Stdout, out, sandbox.Format(format))
		},
	}

	cmd.Flags().StringVar(&format, "format", string(sandbox.FormatDotEnv), "Output format: dotenv, shell or json")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read additional variables from a .env file")

	return cmd
}
