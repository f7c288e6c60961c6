// Package i18n translates Hebrew business types and target audiences to the
// English vocabulary the generation service and rules engine understand.
//
// Lookups are exact after NFC normalization and trimming. A miss is not an
// error: the input comes back unchanged and a warning is logged.
package i18n

import (
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/maruel/natural"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

// Category names a translation table.
type Category string

const (
	BusinessTypes   Category = "businessTypes"
	TargetAudiences Category = "targetAudiences"
)

// Categories lists the known tables.
var Categories = []Category{BusinessTypes, TargetAudiences}

// ParseCategory resolves a category name. Short aliases ("business",
// "audience") are accepted.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "businesstypes", "businesstype", "business":
		return BusinessTypes, nil
	case "targetaudiences", "targetaudience", "audience", "audiences":
		return TargetAudiences, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown translation category %q", s)
}

// Entry is one row of a translation table.
type Entry struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Translator looks up translations. It is safe for concurrent use.
type Translator struct {
	logger *log.Logger
	tables map[Category]map[string]string
}

// New returns a Translator over the built-in tables. A nil logger discards
// miss warnings.
func New(logger *log.Logger) *Translator {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Translator{
		logger: logger,
		tables: map[Category]map[string]string{
			BusinessTypes:   normalizeKeys(businessTypes),
			TargetAudiences: normalizeKeys(targetAudiences),
		},
	}
}

func normalizeKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[norm.NFC.String(k)] = v
	}
	return out
}

// Translate returns the English form of text in category. Empty text gives
// "". Unknown categories and missing entries return text unchanged.
func (t *Translator) Translate(text string, category Category) string {
	if text == "" {
		return ""
	}
	table, ok := t.tables[category]
	if !ok {
		return text
	}
	if out, ok := t.lookup(table, text); ok {
		return out
	}
	t.logger.Warn("no translation",
		"code", errors.ErrCodeMissingTranslation, "text", text, "category", category)
	return text
}

// Lookup is Translate without the fallback or warning.
func (t *Translator) Lookup(text string, category Category) (string, bool) {
	table, ok := t.tables[category]
	if !ok {
		return "", false
	}
	return t.lookup(table, text)
}

func (t *Translator) lookup(table map[string]string, text string) (string, bool) {
	out, ok := table[norm.NFC.String(strings.TrimSpace(text))]
	return out, ok
}

// TranslateRequest returns a copy of req with its business type and target
// audience translated when lang is Hebrew. For any other language req is
// returned as is.
func (t *Translator) TranslateRequest(req *flier.Request, lang string) *flier.Request {
	if !IsHebrew(lang) {
		return req
	}
	out := *req
	out.BusinessType = t.Translate(req.BusinessType, BusinessTypes)
	out.TargetAudience = t.Translate(req.TargetAudience, TargetAudiences)
	t.logger.Debug("translated request",
		"business_type", out.BusinessType, "target_audience", out.TargetAudience)
	return &out
}

// Entries lists a table in natural order of the source text.
func (t *Translator) Entries(category Category) []Entry {
	table := t.tables[category]
	out := make([]Entry, 0, len(table))
	for k, v := range table {
		out = append(out, Entry{Source: k, Target: v})
	}
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i].Source, out[j].Source) })
	return out
}

// IsHebrew reports whether lang names Hebrew, either as a BCP 47 tag
// ("he", "he-IL", "iw") or as the English name.
func IsHebrew(lang string) bool {
	lang = strings.TrimSpace(lang)
	if strings.EqualFold(lang, "hebrew") {
		return true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	he, _ := language.Hebrew.Base()
	return base == he
}
