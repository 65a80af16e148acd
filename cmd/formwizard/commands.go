package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwizard/pkg/controller"
	"github.com/goliatone/go-formwizard/pkg/model"
	"github.com/goliatone/go-formwizard/pkg/render"
	"github.com/goliatone/go-formwizard/pkg/renderers/html"
	"github.com/goliatone/go-formwizard/pkg/renderers/tui"
	"github.com/goliatone/go-formwizard/pkg/schema"
)

func (a *app) runCommand() *cobra.Command {
	var (
		output  string
		confirm bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fill in the form interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.OutputFormat
			}
			if !cmd.Flags().Changed("confirm") {
				confirm = a.cfg.ConfirmSubmit
			}
			format, err := render.ParseOutputFormat(output)
			if err != nil {
				return err
			}
			def, err := a.definition()
			if err != nil {
				return err
			}
			ctrl, err := controller.New(def, controller.WithLogger(a.logger.Named("controller")))
			if err != nil {
				return err
			}

			runner := tui.New(
				tui.WithPromptDriver(tui.NewSurveyDriver(a.stderr)),
				tui.WithConfirmSubmit(confirm),
				tui.WithLogger(a.logger.Named("tui")),
			)
			sub, err := runner.Run(cmd.Context(), ctrl)
			if err != nil {
				return err
			}
			payload, err := render.EncodeSubmission(sub, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, string(payload))
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "submission encoding: json, form or pretty")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "ask for confirmation before submitting")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <values.yaml>",
		Short: "Walk every step with the given values and print the resulting snapshot",
		Long:  `validate fills the form from a YAML or JSON mapping of field names to values, advances step by step and submits at the end. The final snapshot is printed as JSON; the command fails when a step refuses to advance.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			values, err := readValues(args[0])
			if err != nil {
				return err
			}
			ctrl, err := a.prefilled(def, values)
			if err != nil {
				return err
			}

			snap := walk(ctrl, model.StepIndex(def.StepCount()))
			if snap.Step == model.StepIndex(def.StepCount()) {
				snap, _ = ctrl.Submit()
			}

			out, err := render.NewJSON().Render(cmd.Context(), def, snap)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(a.stdout, string(out)); err != nil {
				return err
			}
			if !snap.Submitted {
				return errNotSubmitted
			}
			return nil
		},
	}
}

func (a *app) renderCommand() *cobra.Command {
	var (
		step       int
		valuesPath string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form step as HTML or JSON",
		Long:  `render builds a session, optionally prefilled from a values file, advances towards --step and prints the step it reached. Advancing stops early at the first step whose values do not validate, so the output shows that step with its errors.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			if step < int(model.FirstStep) || step > def.StepCount() {
				return fmt.Errorf("render: step %d out of range [1, %d]", step, def.StepCount())
			}
			values := model.FieldValues{}
			if valuesPath != "" {
				if values, err = readValues(valuesPath); err != nil {
					return err
				}
			}
			ctrl, err := a.prefilled(def, values)
			if err != nil {
				return err
			}
			snap := walk(ctrl, model.StepIndex(step))

			page, err := html.New()
			if err != nil {
				return err
			}
			registry := render.NewRegistry(render.NewJSON(), page)
			out, _, err := registry.Render(cmd.Context(), format, def, snap)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(out)
			return err
		},
	}
	cmd.Flags().IntVarP(&step, "step", "s", 1, "step to render")
	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML or JSON file with field values")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "renderer: html or json")
	return cmd
}

func (a *app) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI schema of the submitted record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			out, err := schema.MarshalSubmission(def)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, string(out))
			return err
		},
	}
}

func (a *app) prefilled(def model.Definition, values model.FieldValues) (*controller.Controller, error) {
	ctrl, err := controller.New(def, controller.WithLogger(a.logger.Named("controller")))
	if err != nil {
		return nil, err
	}
	for _, name := range values.Names() {
		if _, err := ctrl.UpdateField(name, values[name]); err != nil {
			return nil, fmt.Errorf("values: %s: %w", name, err)
		}
	}
	return ctrl, nil
}

// walk advances until target is reached or a step refuses.
func walk(ctrl *controller.Controller, target model.StepIndex) model.Snapshot {
	snap := ctrl.Snapshot()
	for snap.Step < target {
		next := ctrl.Advance()
		if next.Step == snap.Step {
			return next
		}
		snap = next
	}
	return snap
}
