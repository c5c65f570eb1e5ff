package phantomlint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/engine"
	"github.com/DemeWebsolutions/Phantom.ai/internal/logging"
	"github.com/DemeWebsolutions/Phantom.ai/internal/report"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// scanFunc runs one scanner over cfg.Root.
type scanFunc func(engine.Config) (types.Report, error)

// NewAccessibilityCmd builds the check-accessibility root command.
func NewAccessibilityCmd(log *zap.Logger) *cobra.Command {
	return newScanCmd(
		"check-accessibility",
		"Find images without alt text and buttons without a label",
		"check-accessibility walks root_path (default: current directory) and reports <img> tags "+
			"missing an alt attribute and empty or icon-only <button>s without aria-label, "+
			"aria-labelledby or title, in .php, .html and .twig files.",
		engine.Accessibility,
		log,
	)
}

// NewReadmeI18nCmd builds the check-readme-i18n root command.
func NewReadmeI18nCmd(log *zap.Logger) *cobra.Command {
	return newScanCmd(
		"check-readme-i18n",
		"Check plugin readme headers and translation text domains",
		"check-readme-i18n verifies that readme.txt under root_path (default: current directory) "+
			"declares the standard plugin headers, then reports PHP translation calls that appear "+
			"to lack a text-domain argument.",
		engine.ReadmeI18n,
		log,
	)
}

func newScanCmd(name, short, long string, scan scanFunc, log *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           name + " [root_path]",
		Short:         short,
		Long:          long,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			cat, err := config.Default()
			if err != nil {
				return fmt.Errorf("load rules: %w", err)
			}
			rep, err := scan(engine.Config{Root: root, Catalog: &cat, Logger: log})
			if err != nil {
				return fmt.Errorf("scan error: %w", err)
			}
			return report.WriteJSON(cmd.OutOrStdout(), rep)
		},
	}
}

// Execute builds the command with a stderr logger and runs it. It should be
// called by the main package; any error exits with status 2.
func Execute(newCmd func(*zap.Logger) *cobra.Command) {
	log, err := logging.New(zapcore.WarnLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	err = newCmd(log).Execute()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
