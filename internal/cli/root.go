// Package cli implements the animl command.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"xml-binder/animl"
	"xml-binder/internal/config"
	"xml-binder/internal/logging"
	"xml-binder/model"
	"xml-binder/xmldoc"
)

// env is what every command runs with once the root command has resolved the
// configuration.
type env struct {
	cfg *config.Config
	log logging.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "animl",
		Short: "Read, check and write AnIML documents",
		Long: `animl reads and writes AnIML (Analytical Information Markup Language)
documents through the model catalog of the xml-binder module.

Settings are read from animl.yaml in the working directory, or from the file
given with --config or ANIML_CONFIG. ANIML_VERBOSE=1 enables verbose output.
Both variables may also be set in a .env file.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Invalid document
  12 - Family check failed`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	root.PersistentFlags().String("config", "", "Path to the configuration file (default: ./"+config.ConfigFileName+")")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		newValidateCmd(e),
		newFmtCmd(e),
		newInspectCmd(e),
		newNewCmd(e),
		newCheckCmd(e),
		newVersionCmd(),
	)

	return root
}

// Execute runs the animl command.
func Execute() error {
	return newRootCmd().Execute()
}

// Environment variables read by the animl command.
const (
	envConfig  = "ANIML_CONFIG"
	envVerbose = "ANIML_VERBOSE"
)

func (e *env) setup(cmd *cobra.Command) error {
	// Variables already set in the environment win over .env values.
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if getVerboseFlag(cmd) || os.Getenv(envVerbose) == "1" {
		cfg.Verbose = true
	}

	l := logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.Verbose)
	animl.Family.SetLogger(l)

	e.cfg = cfg
	e.log = l

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(envConfig)
	}

	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}

		return cfg, nil
	}

	cfg, err := config.Load(".")
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}

	return verbose
}

func (e *env) options() xmldoc.Options {
	return xmldoc.Options{Indent: e.cfg.Indent, Declaration: e.cfg.Declaration}
}

// readDocument loads the document at path, scrubbing namespace prefixes when
// the configuration asks for it.
func (e *env) readDocument(path string) (*animl.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	el, err := xmldoc.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidDocument, err)
	}

	doc, err := e.load(el)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func (e *env) load(el *etree.Element) (*animl.Document, error) {
	if e.cfg.ScrubNamespaces {
		return animl.Load(el)
	}

	return model.Load[animl.Document](animl.Family, el)
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}

		return nil
	}
}
