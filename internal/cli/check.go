package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xml-binder/animl"
)

func newCheckCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the model catalog for configuration problems",
		Long: `check reports type names that resolve to no model, child fields that can
never be filled, and attribute or text fields declared with list or model
types. Warnings fail the command when strict_family_check is set.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.runCheck(cmd)
		},
	}
}

func (e *env) runCheck(cmd *cobra.Command) error {
	d := animl.Family.Check()
	out := cmd.OutOrStdout()

	for _, diag := range d.All() {
		line := fmt.Sprintf("%s: %s", diag.Severity, diag)
		if len(diag.Suggestions) > 0 {
			line += " (did you mean " + strings.Join(diag.Suggestions, ", ") + "?)"
		}

		fmt.Fprintln(out, line)
	}

	switch {
	case d.HasErrors():
		return fmt.Errorf("%w: %d errors", ErrCheckFailed, len(d.Errors))
	case e.cfg.StrictFamilyCheck && len(d.Warnings) > 0:
		return fmt.Errorf("%w: %d warnings in strict mode", ErrCheckFailed, len(d.Warnings))
	}

	fmt.Fprintf(out, "%d models, %d enums: ok\n", len(animl.Family.Models()), len(animl.Family.Enums()))

	return nil
}
