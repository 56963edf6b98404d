package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanboompow/moltworker/pkg/environment"
)

var debugMode bool

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moltworker",
		Short: "Build the environment for a clawdbot container",
		Long: `moltworker computes the environment variables passed into a clawdbot
container from the host environment, an optional .env file, and the launcher
config. Gateway credentials (AI_GATEWAY_API_KEY + AI_GATEWAY_BASE_URL) take
precedence over direct provider credentials.`,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if debugMode {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(envCmd())
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(dockerArgsCmd())

	return cmd
}

// hostEnvironment layers the environment sources: process env wins over the
// .env file, which wins over config-file defaults.
func hostEnvironment(envFile string, defaults environment.Provider) (environment.Provider, error) {
	sources := []environment.Provider{environment.OS()}

	if envFile != "" {
		dotenv, err := environment.FromDotEnv(envFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, dotenv)
		slog.Debug("Loaded env file", "path", envFile)
	}

	if defaults != nil {
		sources = append(sources, defaults)
	}

	return environment.Multi(sources...), nil
}
