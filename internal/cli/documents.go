package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"xml-binder/animl"
)

func newValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Load documents and report the ones that do not fit the catalog",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runValidate(cmd, args)
		},
	}
}

func (e *env) runValidate(cmd *cobra.Command, paths []string) error {
	failed := 0

	for _, path := range paths {
		if _, err := e.readDocument(path); err != nil {
			e.log.Error("%v", err)
			failed++

			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files failed to load", ErrInvalidDocument, failed, len(paths))
	}

	return nil
}

type fmtFlags struct {
	write bool
}

func newFmtCmd(e *env) *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Load a document and write it back in canonical form",
		Long: `fmt loads a document and dumps it again: attributes in declaration order,
defaults filled in, indentation from the configuration. The result goes to
stdout unless --write is given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runFmt(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "Write the result back to FILE")

	return cmd
}

func (e *env) runFmt(cmd *cobra.Command, path string, flags *fmtFlags) error {
	doc, err := e.readDocument(path)
	if err != nil {
		return err
	}

	if !flags.write {
		return doc.Write(cmd.OutOrStdout(), e.options())
	}

	if err := doc.Save(path, e.options()); err != nil {
		return err
	}

	e.log.Verbose("rewrote %s", path)

	return nil
}

type newFlags struct {
	output  string
	samples []string
	steps   []string
}

func newNewCmd(e *env) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Write a skeleton document",
		Long: `new writes a document with the schema attributes set and one sample per
--sample flag. Sample and experiment step IDs are random UUIDs.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runNew(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringSliceVar(&flags.samples, "sample", []string{"Sample 1"}, "Name of a sample to add")
	cmd.Flags().StringSliceVar(&flags.steps, "step", nil, "Name of an experiment step to add")

	return cmd
}

func (e *env) runNew(cmd *cobra.Command, flags *newFlags) error {
	doc := animl.Create()

	for _, name := range flags.samples {
		s := doc.AppendSample(animl.NewSample(name))
		e.log.Verbose("sample %q gets ID %s", name, s.SampleID)
	}

	for _, name := range flags.steps {
		s := doc.AppendExperimentStep(animl.NewExperimentStep(name))
		e.log.Verbose("experiment step %q gets ID %s", name, s.ExperimentStepID)
	}

	if flags.output == "" {
		return doc.Write(cmd.OutOrStdout(), e.options())
	}

	if _, err := os.Stat(flags.output); err == nil {
		return fmt.Errorf("%w: %s already exists", ErrUsage, flags.output)
	}

	if err := doc.Save(flags.output, e.options()); err != nil {
		return err
	}

	e.log.Info("wrote %s", flags.output)

	return nil
}
