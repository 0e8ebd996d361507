package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/opponentgen/internal/config"
	oerrors "github.com/opmodel/opponentgen/internal/errors"
	"github.com/opmodel/opponentgen/internal/output"
	"github.com/opmodel/opponentgen/internal/version"
)

var (
	// Global flags
	configFlag       string
	dirFlag          string
	baseFlag         string
	placeholderFlag  string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Resolved settings (loaded during PersistentPreRunE)
	resolvedSettings *config.Settings
)

// NewRootCmd creates the root command for opponentgen.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "opponentgen [count]",
		Short: "Generate dummy opponent source pairs from a template",
		Long: `opponentgen clones the DummyOpponent.h / DummyOpponent.cpp template pair
into count numbered pairs in the working directory.

Pair i is named DummyOpponent<id>.h / DummyOpponent<id>.cpp where <id> is the
digit i mod 10 repeated nine times. Inside each generated file every
occurrence of the placeholder 123456789 becomes <id>, and every reference to
DummyOpponent.h becomes the generated header's name. Existing files are
overwritten. Counts above 10 reuse identifiers.

A count starting with "-" is read as a flag. Put it after -- to pass it as
the count (opponentgen -- -1); negative counts are rejected either way.

Examples:
  # Generate the default 10 pairs in the current directory
  opponentgen

  # Generate 3 pairs from a template pair in ./players
  opponentgen 3 --dir ./players

  # Report generated files as YAML
  opponentgen -o yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a YAML config file (env: OPPONENTGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "", "Report format: text, yaml, json (env: OPPONENTGEN_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory holding the template pair (env: OPPONENTGEN_DIR)")
	rootCmd.Flags().StringVar(&baseFlag, "base", "", "Template base name (env: OPPONENTGEN_BASE)")
	rootCmd.Flags().StringVar(&placeholderFlag, "placeholder", "", "Placeholder identifier in the template (env: OPPONENTGEN_PLACEHOLDER)")

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// flagError reports a flag parse failure as invalid input.
func flagError(_ *cobra.Command, err error) error {
	return NewExitError(&oerrors.DetailError{
		Type:    "validation failed",
		Message: err.Error(),
		Hint:    "A count starting with - must follow --, e.g. opponentgen -- -1.",
		Cause:   oerrors.ErrValidation,
	}, ExitValidationError)
}

// initializeGlobals resolves settings and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	settings, err := config.Resolve(config.ResolveOptions{
		ConfigFlag:      configFlag,
		DirFlag:         dirFlag,
		BaseFlag:        baseFlag,
		PlaceholderFlag: placeholderFlag,
		OutputFlag:      outputFormatFlag,
	})
	if err != nil {
		return err
	}
	resolvedSettings = settings

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if settings.Timestamps != nil {
		logCfg.Timestamps = settings.Timestamps
	}
	output.SetupLoggingTo(cmd.ErrOrStderr(), logCfg)

	info := version.Get()
	output.Debug("opponentgen started", "version", info.Version, "commit", info.GitCommit)
	config.LogResolvedValues(settings.Values())

	return nil
}

// GetSettings returns the resolved settings.
func GetSettings() *config.Settings {
	return resolvedSettings
}
