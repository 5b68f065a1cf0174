package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved profile and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, cleanup, err := openSession(cmd, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if !force {
				ok, err := newSurveyDriver().Confirm(cmd.Context(), ConfirmConfig{
					Message: "Discard all saved profile data?",
					Default: false,
				})
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
			}

			controller.Reset(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Profile cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}
