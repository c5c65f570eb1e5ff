package engine

import (
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/DemeWebsolutions/Phantom.ai/internal/config"
	"github.com/DemeWebsolutions/Phantom.ai/internal/detectors"
	"github.com/DemeWebsolutions/Phantom.ai/internal/logging"
	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

// Config controls one scan.
type Config struct {
	// Root is the directory to scan. Reported paths are built from it
	// verbatim.
	Root string
	// Catalog holds the rule set; nil means config.Default().
	Catalog *config.Catalog
	// Logger receives debug records for skipped files. Nil disables logging.
	Logger *zap.Logger
}

func (c Config) catalog() (config.Catalog, error) {
	if c.Catalog != nil {
		return *c.Catalog, nil
	}
	return config.Default()
}

// stats summarizes a scan for the closing debug record.
type stats struct {
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
}

// collector appends findings in discovery order and counts files.
type collector struct {
	report  types.Report
	stats   stats
	log     *zap.Logger
	started time.Time
}

func newCollector(log *zap.Logger) *collector {
	return &collector{
		report:  types.Report{Results: []types.Finding{}},
		log:     log,
		started: time.Now(),
	}
}

// file runs ds over one walked file, or records the skip.
func (c *collector) file(r FileResult, ds []detectors.Detector) {
	if r.Skipped() {
		c.stats.FilesSkipped++
		c.log.Debug("skipping file", zap.String("path", r.Path), zap.Error(r.Err))
		return
	}
	c.stats.FilesScanned++
	c.report.Add(detectors.RunAll(ds, r.Path, []byte(r.Content))...)
}

func (c *collector) finish(scanner string) types.Report {
	c.stats.Duration = time.Since(c.started)
	c.log.Debug("scan complete",
		zap.String("scanner", scanner),
		zap.Int("findings", len(c.report.Results)),
		zap.Int("files_scanned", c.stats.FilesScanned),
		zap.Int("files_skipped", c.stats.FilesSkipped),
		zap.Duration("duration", c.stats.Duration),
	)
	return c.report
}

// Accessibility scans markup files under cfg.Root for images without alt
// text and buttons without an accessible label.
func Accessibility(cfg Config) (types.Report, error) {
	cat, err := cfg.catalog()
	if err != nil {
		return types.Report{}, err
	}
	log := logging.OrNop(cfg.Logger)
	ds := detectors.Markup(cat.Accessibility)
	col := newCollector(log)
	opts := WalkOptions{Include: cat.Accessibility.Include}
	if err := Walk(cfg.Root, opts, log, func(r FileResult) { col.file(r, ds) }); err != nil {
		return types.Report{}, err
	}
	return col.finish("accessibility"), nil
}

// ReadmeI18n checks the plugin readme for required headers, then scans PHP
// files for translation calls that look like they lack a text domain.
// Readme findings always come first.
func ReadmeI18n(cfg Config) (types.Report, error) {
	cat, err := cfg.catalog()
	if err != nil {
		return types.Report{}, err
	}
	if err := checkRoot(cfg.Root); err != nil {
		return types.Report{}, err
	}
	log := logging.OrNop(cfg.Logger)
	textDomain, err := detectors.MissingTextDomain(cat.I18n.MissingTextDomain, cat.I18n.Functions)
	if err != nil {
		return types.Report{}, err
	}
	col := newCollector(log)

	if p, ok := findReadme(cfg.Root, cat.Readme.Candidates); !ok {
		col.report.Add(detectors.ReadmeMissing(cat.Readme))
	} else {
		content, err := readFile(p)
		col.file(FileResult{Path: p, Content: content, Err: err}, []detectors.Detector{detectors.ReadmeHeaders(cat.Readme)})
	}

	ds := []detectors.Detector{textDomain}
	opts := WalkOptions{Include: cat.I18n.Include, SkipHiddenDirs: cat.I18n.SkipHiddenDirs}
	if err := Walk(cfg.Root, opts, log, func(r FileResult) { col.file(r, ds) }); err != nil {
		return types.Report{}, err
	}
	return col.finish("readme-i18n"), nil
}

// findReadme returns the first candidate directly under root that is a
// regular file.
func findReadme(root string, candidates []string) (string, bool) {
	for _, name := range candidates {
		p := joinPath(root, name)
		if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}
