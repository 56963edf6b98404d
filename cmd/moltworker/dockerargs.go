package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanboompow/moltworker/pkg/configfile"
	"github.com/vanboompow/moltworker/pkg/sandbox"
)

func dockerArgsCmd() *cobra.Command {
	var (
		image   string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "docker-args",
		Short: "Print the docker run arguments for a clawdbot container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := configfile.NewManager()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if image == "" {
				image = cfg.GetImage()
			}

			env, err := hostEnvironment(envFile, cfg.Environment())
			if err != nil {
				return err
			}

			out := sandbox.BuildEnv(cmd.Context(), env)
			fmt.Println(strings.Join(sandbox.DockerRunArgs(image, out), " "))

			return nil
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "Container image (defaults to the configured image)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read additional variables from a .env file")

	return cmd
}
