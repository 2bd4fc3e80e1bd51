package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"xml-binder/animl"
)

const (
	formatYAML = "yaml"
	formatSpew = "spew"
)

// summary is the YAML outline of a document.
type summary struct {
	Version         string          `yaml:"version"`
	Samples         []sampleSummary `yaml:"samples,omitempty"`
	ExperimentSteps []stepSummary   `yaml:"experiment_steps,omitempty"`
}

type sampleSummary struct {
	Name     string   `yaml:"name"`
	SampleID string   `yaml:"sample_id"`
	Tags     []string `yaml:"tags,omitempty"`
}

type stepSummary struct {
	Name             string          `yaml:"name"`
	ExperimentStepID string          `yaml:"experiment_step_id"`
	Technique        string          `yaml:"technique,omitempty"`
	Results          []resultSummary `yaml:"results,omitempty"`
}

type resultSummary struct {
	Name   string   `yaml:"name"`
	Series []string `yaml:"series,omitempty"`
}

func summarize(doc *animl.Document) summary {
	s := summary{Version: doc.Version}

	if doc.SampleSet != nil {
		for _, sample := range doc.SampleSet.Samples {
			ss := sampleSummary{Name: sample.Name, SampleID: sample.SampleID}
			if sample.TagSet != nil {
				for _, tag := range sample.TagSet.Tags {
					ss.Tags = append(ss.Tags, tag.Name)
				}
			}

			s.Samples = append(s.Samples, ss)
		}
	}

	if doc.ExperimentSet != nil {
		for _, step := range doc.ExperimentSet.ExperimentSteps {
			st := stepSummary{Name: step.Name, ExperimentStepID: step.ExperimentStepID}
			if step.Technique != nil {
				st.Technique = step.Technique.Name
			}

			for _, result := range step.Results {
				rs := resultSummary{Name: result.Name}
				if result.Series != nil {
					for _, series := range result.Series.Series {
						rs.Series = append(rs.Series, fmt.Sprintf("%s (%s, %s)", series.Name, series.SeriesType, series.Dependency))
					}
				}

				st.Results = append(st.Results, rs)
			}

			s.ExperimentSteps = append(s.ExperimentSteps, st)
		}
	}

	return s
}

func newInspectCmd(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the content of a document",
		Long: `inspect loads a document and prints either a YAML outline of its samples,
experiment steps and series (--format=yaml) or the full loaded value
(--format=spew).`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := e.readDocument(args[0])
			if err != nil {
				return err
			}

			return writeInspection(cmd.OutOrStdout(), doc, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format: yaml or spew")

	return cmd
}

func writeInspection(w io.Writer, doc *animl.Document, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(summarize(doc)); err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}

		return enc.Close()
	case formatSpew:
		cs := spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			DisableMethods:          true,
			SortKeys:                true,
		}
		cs.Fdump(w, doc)

		return nil
	default:
		return fmt.Errorf("%w: unknown format %q, want %s or %s", ErrUsage, format, formatYAML, formatSpew)
	}
}
