package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-biodata/pkg/catalog"
	"github.com/goliatone/go-biodata/pkg/formdata"
	"github.com/goliatone/go-biodata/pkg/session"
)

// skipOption is the extra first choice on optional selects so users can leave
// the field unanswered.
const skipOption = "(skip)"

func newWizardCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wizard",
		Short: "Fill in the profile through guided prompts",
		Long:  `Walks through every profile section with interactive prompts, then lets you pick a template and attach a photo. Answers persist between runs; rerun the wizard to revise them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, cleanup, err := openSession(cmd, *configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			err = runWizard(cmd.Context(), controller, newSurveyDriver(), cmd.OutOrStdout())
			if errors.Is(err, ErrInterrupted) {
				// Partial answers are already applied and will be flushed by
				// cleanup; interruption is not a failure.
				fmt.Fprintln(cmd.OutOrStdout(), "Interrupted, progress saved.")
				return nil
			}
			return err
		},
	}
	return cmd
}

// runWizard drives the full builder flow: form questions, template choice,
// photo attachment, and a closing progress summary.
func runWizard(ctx context.Context, controller *session.Controller, driver PromptDriver, out io.Writer) error {
	if err := controller.SwitchSection(ctx, session.SectionForm); err != nil {
		return err
	}

	fields, err := askFormSections(ctx, driver, controller.State().Record)
	if err != nil {
		// Apply whatever was answered before bailing out.
		if len(fields) > 0 {
			controller.ApplyFields(fields)
		}
		return err
	}
	controller.ApplyFields(fields)

	if err := askTemplate(ctx, controller, driver); err != nil {
		return err
	}
	if err := askPhoto(ctx, controller, driver); err != nil {
		return err
	}

	if err := controller.SwitchSection(ctx, session.SectionPreview); err != nil {
		return err
	}

	report := controller.Progress()
	fmt.Fprintf(out, "\nProfile saved. %s\n", report.Display())
	fmt.Fprintln(out, `Run "biodata preview" to render the document.`)
	return nil
}

// askFormSections walks every section and returns the full field snapshot.
// Previously saved values become prompt defaults so reruns revise instead of
// starting over.
func askFormSections(ctx context.Context, driver PromptDriver, previous formdata.Record) ([]formdata.Field, error) {
	var fields []formdata.Field

	for _, section := range wizardSections() {
		if err := driver.Info(ctx, "\n== "+section.Title+" =="); err != nil {
			return fields, err
		}
		for _, spec := range section.Prompts {
			answered, err := askPrompt(ctx, driver, spec, previous)
			if err != nil {
				return fields, err
			}
			fields = append(fields, answered...)
		}
	}
	return fields, nil
}

func askPrompt(ctx context.Context, driver PromptDriver, spec promptSpec, previous formdata.Record) ([]formdata.Field, error) {
	kind := fieldKindFor(spec.Kind)

	switch spec.Kind {
	case promptText, promptTextArea:
		cfg := InputConfig{
			Message:   spec.Message,
			Help:      spec.Help,
			Default:   previous.String(spec.Key),
			Validator: spec.Validate,
		}
		ask := driver.Input
		if spec.Kind == promptTextArea {
			ask = driver.TextArea
		}
		value, err := ask(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return []formdata.Field{{Name: spec.Key, Kind: kind, Value: value}}, nil

	case promptSelect, promptRadio:
		options := spec.Options
		if !spec.Required {
			options = append([]string{skipOption}, options...)
		}
		index, err := driver.Select(ctx, SelectConfig{
			Message:      spec.Message,
			Help:         spec.Help,
			Options:      options,
			DefaultIndex: indexOf(options, previous.String(spec.Key)),
		})
		if err != nil {
			return nil, err
		}
		value := options[index]
		if value == skipOption {
			value = ""
		}
		if spec.Kind == promptRadio {
			if value == "" {
				return nil, nil
			}
			return []formdata.Field{{Name: spec.Key, Kind: kind, Value: value, Checked: true}}, nil
		}
		return []formdata.Field{{Name: spec.Key, Kind: kind, Value: value}}, nil

	case promptMulti:
		indices, err := driver.MultiSelect(ctx, SelectConfig{
			Message: spec.Message,
			Help:    spec.Help,
			Options: spec.Options,
		})
		if err != nil {
			return nil, err
		}
		chosen := make(map[int]bool, len(indices))
		for _, i := range indices {
			chosen[i] = true
		}
		fields := make([]formdata.Field, 0, len(spec.Options))
		for i, option := range spec.Options {
			fields = append(fields, formdata.Field{
				Name:    spec.Key,
				Kind:    kind,
				Value:   option,
				Checked: chosen[i],
			})
		}
		return fields, nil
	}

	return nil, fmt.Errorf("unknown prompt kind for %q", spec.Key)
}

func askTemplate(ctx context.Context, controller *session.Controller, driver PromptDriver) error {
	if err := controller.SwitchSection(ctx, session.SectionTemplates); err != nil {
		return err
	}

	templates := catalog.Default().Templates()
	options := make([]string, len(templates))
	defaultIndex := 0
	for i, tpl := range templates {
		options[i] = fmt.Sprintf("%s - %s", tpl.Name, tpl.Description)
		if tpl.ID == controller.State().TemplateID {
			defaultIndex = i
		}
	}

	index, err := driver.Select(ctx, SelectConfig{
		Message:      "Choose a template",
		Options:      options,
		DefaultIndex: defaultIndex,
		PageSize:     len(options),
	})
	if err != nil {
		return err
	}
	return controller.SelectTemplate(ctx, templates[index].ID)
}

func askPhoto(ctx context.Context, controller *session.Controller, driver PromptDriver) error {
	if err := controller.SwitchSection(ctx, session.SectionPhoto); err != nil {
		return err
	}

	attach, err := driver.Confirm(ctx, ConfirmConfig{
		Message: "Attach a photo?",
		Default: controller.State().HasPhoto(),
	})
	if err != nil {
		return err
	}
	if !attach {
		if controller.State().HasPhoto() {
			controller.RemovePhoto(ctx)
		}
		return nil
	}
	if controller.State().HasPhoto() {
		keep, err := driver.Confirm(ctx, ConfirmConfig{
			Message: "Keep the current photo?",
			Default: true,
		})
		if err != nil {
			return err
		}
		if keep {
			return nil
		}
	}

	path, err := driver.Input(ctx, InputConfig{
		Message: "Photo file path",
		Help:    "JPEG or PNG, up to 5MB",
		Validator: func(s string) error {
			if _, err := os.Stat(s); err != nil {
				return fmt.Errorf("cannot read %q", s)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return controller.AttachPhoto(ctx, session.DetectImageType(data), data)
}
