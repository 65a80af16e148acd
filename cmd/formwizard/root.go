package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formwizard/internal/config"
	"github.com/goliatone/go-formwizard/internal/logging"
	"github.com/goliatone/go-formwizard/pkg/definition"
	"github.com/goliatone/go-formwizard/pkg/model"
)

// errNotSubmitted marks a validate run whose values did not reach submission.
// The snapshot has already been printed, so main only sets the exit code.
var errNotSubmitted = errors.New("formwizard: form not submitted")

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg            config.Config
	definitionPath string
	logger         *zap.SugaredLogger
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "formwizard",
		Short:         "Drive and inspect multi-step forms",
		Long:          `formwizard walks a multi-step form definition, validating each step before moving forward, and exports the submitted record.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&a.definitionPath, "definition", "d", "", "form definition file (YAML or JSON); defaults to the embedded registration form")

	root.AddCommand(
		a.runCommand(),
		a.validateCommand(),
		a.renderCommand(),
		a.schemaCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("definition") {
		cfg.DefinitionPath = a.definitionPath
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(a.stderr, cfg.LogLevel, cfg.LogFormat)
	return nil
}

func (a *app) definition() (model.Definition, error) {
	if a.cfg.DefinitionPath == "" {
		return definition.Default(), nil
	}
	def, err := definition.LoadFile(a.cfg.DefinitionPath)
	if err != nil {
		return model.Definition{}, err
	}
	a.logger.Debugw("definition loaded", "path", a.cfg.DefinitionPath, "form", def.ID, "steps", def.StepCount())
	return def, nil
}

// readValues decodes a flat YAML (or JSON) mapping of field names to values.
func readValues(path string) (model.FieldValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("values: %w", err)
	}
	var values model.FieldValues
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("values: parse %s: %w", path, err)
	}
	if values == nil {
		values = model.FieldValues{}
	}
	return values, nil
}
