package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPreviewCmd(configPath *string) *cobra.Command {
	var (
		rendererName string
		outputPath   string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the current profile",
		Long:  `Renders the saved profile with the selected template. Use --renderer text for a terminal-friendly rendition or --output to write the HTML document to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, cleanup, err := openSession(cmd, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if rendererName == "" {
				cfg, err := LoadConfig(*configPath)
				if err != nil {
					return err
				}
				rendererName = cfg.Renderer
			}

			out, contentType, err := controller.Preview(cmd.Context(), rendererName)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("rendered preview",
				"renderer", rendererName, "contentType", contentType, "bytes", len(out))

			if outputPath != "" {
				if err := os.WriteFile(outputPath, out, 0o644); err != nil {
					return fmt.Errorf("write %q: %w", outputPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "renderer to use (html or text)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write output to file instead of stdout")
	return cmd
}
