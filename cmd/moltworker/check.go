package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vanboompow/moltworker/pkg/configfile"
	"github.com/vanboompow/moltworker/pkg/sandbox"
)

func checkCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show which recognized variables are set (values are never printed)",
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

			set := color.New(color.FgGreen)
			unset := color.New(color.FgYellow)

			for _, name := range sandbox.InputVars() {
				if _, ok := env.Get(cmd.Context(), name); ok {
					set.Printf("  %-24s set\n", name)
				} else {
					unset.Printf("  %-24s unset\n", name)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Read additional variables from a .env file")

	return cmd
}
