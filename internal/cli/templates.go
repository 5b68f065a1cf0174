package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-biodata/pkg/catalog"
)

func newTemplatesCmd(configPath *string) *cobra.Command {
	var selectID string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List templates or select one",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, cleanup, err := openSession(cmd, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if selectID != "" {
				if err := controller.SelectTemplate(cmd.Context(), selectID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Selected template %q\n", selectID)
				return nil
			}

			current := controller.State().TemplateID
			c := catalog.Default()
			for _, tpl := range c.Templates() {
				marker := " "
				if tpl.ID == current {
					marker = "*"
				}
				verse := c.VerseForTemplate(tpl)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %s (%s)\n", marker, tpl.ID, tpl.Description, verse.Reference)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&selectID, "select", "s", "", "select the template with this id")
	return cmd
}
