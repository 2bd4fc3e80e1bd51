package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"xml-binder/animl"
	"xml-binder/internal/config"
	"xml-binder/model"
)

const sampleDoc = `<AnIML><SampleSet><Sample sampleID="1" name="Buffer"><TagSet><Tag name="lot"/></TagSet></Sample></SampleSet></AnIML>`

// run executes the animl command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	t.Logf("stderr: %s", errOut.String())

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// compactConfig writes a configuration producing single-line output.
func compactConfig(t *testing.T, dir string) string {
	t.Helper()

	return writeFile(t, dir, config.ConfigFileName, "indent: 0\ndeclaration: false\n")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.animl", sampleDoc)
	bad := writeFile(t, dir, "bad.animl", `<AnIML><SampleSet><Sample name="x"/></SampleSet></AnIML>`)

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Equal(t, "ok "+good+"\n", out)

	out, err = run(t, "validate", good, bad)
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Equal(t, ExitInvalidDocument, ExitCodeForError(err))
	assert.Contains(t, out, "ok "+good)
	assert.NotContains(t, out, bad)
}

func TestValidateMalformedXML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.animl", "")

	_, err := run(t, "validate", path)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestFmt(t *testing.T) {
	dir := t.TempDir()
	cfg := compactConfig(t, dir)
	path := writeFile(t, dir, "doc.animl", sampleDoc)

	out, err := run(t, "--config", cfg, "fmt", path)
	require.NoError(t, err)

	want := `<AnIML version="0.90" xmlns="` + animl.Namespace + `" xmlns:xsi="` + animl.XSINamespace +
		`" xsi:schemaLocation="` + animl.SchemaLocation + `"><SampleSet><Sample name="Buffer" sampleID="1">` +
		`<TagSet><Tag name="lot"/></TagSet></Sample></SampleSet></AnIML>`
	assert.Equal(t, want, out)
}

func TestFmtWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.animl", sampleDoc)

	out, err := run(t, "fmt", "--write", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, string(data), "\n  <SampleSet>\n")

	doc, err := animl.Open(path)
	require.NoError(t, err)
	assert.Equal(t, "Buffer", doc.SampleSet.Samples[0].Name)
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.animl")

	_, err := run(t, "new", "-o", path, "--sample", "A", "--sample", "B", "--step", "Weigh")
	require.NoError(t, err)

	doc, err := animl.Open(path)
	require.NoError(t, err)
	require.Len(t, doc.SampleSet.Samples, 2)
	assert.Equal(t, "B", doc.SampleSet.Samples[1].Name)
	assert.NotEqual(t, doc.SampleSet.Samples[0].SampleID, doc.SampleSet.Samples[1].SampleID)
	require.Len(t, doc.ExperimentSet.ExperimentSteps, 1)

	_, err = run(t, "new", "-o", path)
	require.ErrorIs(t, err, ErrUsage)
}

func TestNewToStdout(t *testing.T) {
	out, err := run(t, "new")
	require.NoError(t, err)

	doc, err := animl.Loads(out)
	require.NoError(t, err)
	require.Len(t, doc.SampleSet.Samples, 1)
	assert.Equal(t, "Sample 1", doc.SampleSet.Samples[0].Name)
}

func TestInspect(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.animl", sampleDoc)

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "inspect", path)
		require.NoError(t, err)

		var got summary
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, summary{
			Version: animl.SchemaVersion,
			Samples: []sampleSummary{{Name: "Buffer", SampleID: "1", Tags: []string{"lot"}}},
		}, got)
	})

	t.Run("spew", func(t *testing.T) {
		out, err := run(t, "inspect", "--format", "spew", path)
		require.NoError(t, err)
		assert.Contains(t, out, `SampleID: (string) (len=1) "1"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, "inspect", "--format", "json", path)
		require.ErrorIs(t, err, ErrUsage)
	})
}

func TestSummarizeFullDocument(t *testing.T) {
	doc, err := animl.Open("../../animl/testdata/full.animl")
	require.NoError(t, err)

	s := summarize(doc)
	require.Len(t, s.ExperimentSteps, 1)
	assert.Equal(t, "UV/Vis", s.ExperimentSteps[0].Technique)
	assert.Equal(t, []resultSummary{{
		Name: "Spectrum",
		Series: []string{
			"Wavelength (Int32, independent)",
			"Absorbance (Float32, dependent)",
			"Raw (Float32, dependent)",
		},
	}}, s.ExperimentSteps[0].Results)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, ": ok\n")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "animl "), out)
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"fmt"},
		{"fmt", "a", "b"},
		{"validate"},
		{"check", "extra"},
		{"new", "--bogus"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := run(t, args...)
			require.Error(t, err)
			assert.Equal(t, ExitUsageError, ExitCodeForError(err))
		})
	}
}

func TestBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bad.yaml", "indent: [\n")

	_, err := run(t, "--config", cfg, "check")
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, ExitConfigError, ExitCodeForError(err))

	_, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "check")
	require.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestConfigFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.animl", sampleDoc)
	t.Setenv(envConfig, compactConfig(t, dir))

	out, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<AnIML "), out)
	assert.NotContains(t, out, "\n")

	t.Setenv(envConfig, filepath.Join(dir, "missing.yaml"))

	_, err = run(t, "check")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestVerboseLogsRouting(t *testing.T) {
	path := writeFile(t, t.TempDir(), "doc.animl", sampleDoc)

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs([]string{"validate", "-v", path})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "[VERBOSE] SampleSet: <Sample> routed to samples")

	animl.Family.SetLogger(nil)
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: nil, want: ExitSuccess},
		{err: errors.New("boom"), want: ExitGeneralError},
		{err: fmt.Errorf("wrapped: %w", ErrUsage), want: ExitUsageError},
		{err: config.ErrConfigNotFound, want: ExitConfigError},
		{err: ErrCheckFailed, want: ExitCheckFailed},
		{err: fmt.Errorf("doc.animl: %w", &model.Error{Code: model.CodeMissingAttribute, Err: model.ErrMissingAttribute}), want: ExitInvalidDocument},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCodeForError(tt.err), "%v", tt.err)
	}
}
