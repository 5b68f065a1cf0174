package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-biodata/pkg/catalog"
)

func newStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"progress"},
		Short:   "Show completion progress and session details",
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, cleanup, err := openSession(cmd, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			state := controller.State()
			report := controller.Progress()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Progress: %s\n", report.Display())
			fmt.Fprintf(out, "Screen:   %s\n", state.Section)
			fmt.Fprintf(out, "Fields:   %d answered\n", len(state.Record))

			template := "none"
			if state.HasTemplate() {
				tpl := catalog.Default().ResolveTemplate(state.TemplateID)
				template = fmt.Sprintf("%s (%s)", tpl.Name, tpl.ID)
			}
			fmt.Fprintf(out, "Template: %s\n", template)

			photo := "none"
			if state.HasPhoto() {
				photo = "attached"
			}
			fmt.Fprintf(out, "Photo:    %s\n", photo)
			return nil
		},
	}
}
