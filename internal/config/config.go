package config

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/DemeWebsolutions/Phantom.ai/internal/types"
)

//go:embed rules.yaml
var builtin []byte

// Rule is the static description of one check.
type Rule struct {
	ID       string         `yaml:"id"`
	Severity types.Severity `yaml:"severity"`
	Message  string         `yaml:"message"`
}

// Finding builds a finding for this rule at file:line.
func (r Rule) Finding(file string, line int) types.Finding {
	return types.Finding{Rule: r.ID, File: file, Line: line, Severity: r.Severity, Message: r.Message}
}

// Accessibility configures the markup scanner.
type Accessibility struct {
	Include            []string `yaml:"include"`
	ImageMissingAlt    Rule     `yaml:"image_missing_alt"`
	ButtonMissingLabel Rule     `yaml:"button_missing_label"`
}

// Readme configures the plugin metadata header check.
type Readme struct {
	Candidates      []string `yaml:"candidates"`
	RequiredHeaders []string `yaml:"required_headers"`
	Missing         Rule     `yaml:"missing"`
	// MissingHeader.Message is a format string taking the header label.
	MissingHeader Rule `yaml:"missing_header"`
}

// I18n configures the translation text-domain heuristic.
type I18n struct {
	Include           []string `yaml:"include"`
	SkipHiddenDirs    bool     `yaml:"skip_hidden_dirs"`
	Functions         []string `yaml:"functions"`
	MissingTextDomain Rule     `yaml:"missing_text_domain"`
}

// Catalog is the full rule set.
type Catalog struct {
	Accessibility Accessibility `yaml:"accessibility"`
	Readme        Readme        `yaml:"readme"`
	I18n          I18n          `yaml:"i18n"`
}

// Parse decodes and validates a catalog document.
func Parse(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("decode rule catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks that every rule is usable and every list is populated.
func (c Catalog) Validate() error {
	var errs []error
	for _, r := range []Rule{
		c.Accessibility.ImageMissingAlt,
		c.Accessibility.ButtonMissingLabel,
		c.Readme.Missing,
		c.Readme.MissingHeader,
		c.I18n.MissingTextDomain,
	} {
		if strings.TrimSpace(r.ID) == "" {
			errs = append(errs, errors.New("rule with empty id"))
			continue
		}
		if !r.Severity.Valid() {
			errs = append(errs, fmt.Errorf("rule %s: unknown severity %q", r.ID, r.Severity))
		}
		if r.Message == "" {
			errs = append(errs, fmt.Errorf("rule %s: empty message", r.ID))
		}
	}
	if len(c.Accessibility.Include) == 0 {
		errs = append(errs, errors.New("accessibility: no include globs"))
	}
	if len(c.I18n.Include) == 0 {
		errs = append(errs, errors.New("i18n: no include globs"))
	}
	if len(c.I18n.Functions) == 0 {
		errs = append(errs, errors.New("i18n: no translation functions"))
	}
	if len(c.Readme.Candidates) == 0 {
		errs = append(errs, errors.New("readme: no candidate file names"))
	}
	if !strings.Contains(c.Readme.MissingHeader.Message, "%s") {
		errs = append(errs, errors.New("readme: missing_header message needs a %s verb"))
	}
	return errors.Join(errs...)
}

var (
	defaultOnce sync.Once
	defaultCat  Catalog
	defaultErr  error
)

// Default returns the embedded catalog. It is decoded on first use; callers
// receive their own copy of every list.
func Default() (Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse(builtin)
	})
	if defaultErr != nil {
		return Catalog{}, defaultErr
	}
	return defaultCat.clone(), nil
}

func (c Catalog) clone() Catalog {
	c.Accessibility.Include = slices.Clone(c.Accessibility.Include)
	c.Readme.Candidates = slices.Clone(c.Readme.Candidates)
	c.Readme.RequiredHeaders = slices.Clone(c.Readme.RequiredHeaders)
	c.I18n.Include = slices.Clone(c.I18n.Include)
	c.I18n.Functions = slices.Clone(c.I18n.Functions)
	return c
}
