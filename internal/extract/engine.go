package extract

import (
	"regexp"

	"gitsniff/internal/core/domain"
	"gitsniff/internal/report"
)

// Config is the extraction configuration: one independent switch per
// category, fixed for the lifetime of one engine.
type Config struct {
	Addresses  bool
	Emails     bool
	Telephones bool
	Tokens     bool
	URLs       bool
}

// Enabled reports whether a category's switch is on.
func (c Config) Enabled(cat domain.Category) bool {
	switch cat {
	case domain.CategoryAddresses:
		return c.Addresses
	case domain.CategoryEmails:
		return c.Emails
	case domain.CategoryTelephones:
		return c.Telephones
	case domain.CategoryTokens:
		return c.Tokens
	case domain.CategoryURLs:
		return c.URLs
	}
	return false
}

// Any reports whether at least one category is enabled.
func (c Config) Any() bool {
	for _, cat := range domain.AllCategories() {
		if c.Enabled(cat) {
			return true
		}
	}
	return false
}

// EnabledCategories returns the enabled categories in declaration order.
func (c Config) EnabledCategories() []domain.Category {
	var out []domain.Category
	for _, cat := range domain.AllCategories() {
		if c.Enabled(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// matcher is one named capability record: a category, its grammar and
// its switch. Adding a category means adding one record below, not new
// control flow.
type matcher struct {
	category domain.Category
	pattern  *regexp.Regexp
	enabled  bool
}

// Engine applies every enabled matcher to each ingested text and owns
// the accumulated collections. Collections are created fresh at
// construction; instances never share state.
type Engine struct {
	matchers []matcher
	found    map[domain.Category][]string
}

// NewEngine creates an engine for one run. A collection exists if and
// only if its category is enabled; disabled categories are entirely
// absent from the export, not merely empty.
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		matchers: []matcher{
			{domain.CategoryAddresses, addressPattern, cfg.Addresses},
			{domain.CategoryEmails, emailPattern, cfg.Emails},
			{domain.CategoryTelephones, telephonePattern, cfg.Telephones},
			{domain.CategoryTokens, tokenPattern, cfg.Tokens},
			{domain.CategoryURLs, urlPattern, cfg.URLs},
		},
		found: make(map[domain.Category][]string),
	}
	for _, m := range e.matchers {
		if m.enabled {
			e.found[m.category] = make([]string, 0)
		}
	}
	return e
}

// Ingest scans one unit of text with every enabled matcher and appends
// each match, in order of occurrence, to its category's collection.
// Accumulation is cumulative across every call for the engine's
// lifetime. Matching is local to the given text; no match spans two
// ingested units.
func (e *Engine) Ingest(text string) {
	for _, m := range e.matchers {
		if !m.enabled {
			continue
		}
		if matches := m.pattern.FindAllString(text, -1); len(matches) > 0 {
			e.found[m.category] = append(e.found[m.category], matches...)
		}
	}
}

// Matches returns the accumulated collection for one enabled category,
// nil if the category is disabled.
func (e *Engine) Matches(cat domain.Category) []string {
	return e.found[cat]
}

// Total returns the number of matches accumulated across categories.
func (e *Engine) Total() int {
	n := 0
	for _, matches := range e.found {
		n += len(matches)
	}
	return n
}

// Report snapshots the collections into an export document keyed by
// exactly the enabled categories, in declaration order.
func (e *Engine) Report() *report.Report {
	r := report.New()
	for _, m := range e.matchers {
		if !m.enabled {
			continue
		}
		matches := make([]string, len(e.found[m.category]))
		copy(matches, e.found[m.category])
		r.Add(string(m.category), matches)
	}
	return r
}
