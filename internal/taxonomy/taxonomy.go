// Package taxonomy provides the categorized skill dictionaries used to recognize
// technical and soft skills in résumés and job descriptions.
//
// A Taxonomy is immutable after construction and safe for concurrent use.
package taxonomy

import (
	"regexp"
	"strings"
	"sync"
)

// Category is a named group of technical skills
type Category struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

// Taxonomy holds flattened skill lists and one precompiled whole-word matcher per skill
type Taxonomy struct {
	version    string
	categories []Category
	technical  []string
	soft       []string
	matchers   map[string]*regexp.Regexp
}

var (
	defaultOnce sync.Once
	defaultTax  *Taxonomy
)

// Default returns the process-wide built-in taxonomy, constructed on first use
func Default() *Taxonomy {
	defaultOnce.Do(func() {
		defaultTax = New(DefaultVersion, defaultCategories, defaultSoftSkills)
	})
	return defaultTax
}

// New builds a taxonomy from categorized technical skills and a soft-skill list.
// Skills are lower-cased and trimmed; empty entries and duplicates are dropped
// while preserving first-seen order.
func New(version string, categories []Category, soft []string) *Taxonomy {
	t := &Taxonomy{
		version:    version,
		categories: make([]Category, 0, len(categories)),
		matchers:   make(map[string]*regexp.Regexp),
	}

	seenTech := make(map[string]bool)
	for _, cat := range categories {
		skills := normalizeList(cat.Skills)
		t.categories = append(t.categories, Category{Name: cat.Name, Skills: skills})
		for _, s := range skills {
			if !seenTech[s] {
				seenTech[s] = true
				t.technical = append(t.technical, s)
			}
		}
	}
	t.soft = normalizeList(soft)

	for _, s := range t.technical {
		t.matchers[s] = WholeWord(s)
	}
	for _, s := range t.soft {
		if _, ok := t.matchers[s]; !ok {
			t.matchers[s] = WholeWord(s)
		}
	}

	return t
}

// normalizeList lower-cases, trims and deduplicates a skill list in order
func normalizeList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Version identifies the dictionary set
func (t *Taxonomy) Version() string {
	return t.version
}

// Categories returns a copy of the technical categories
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	for i, c := range t.categories {
		out[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}

// TechnicalSkills returns the flattened, deduplicated technical skill list in category order
func (t *Taxonomy) TechnicalSkills() []string {
	return append([]string(nil), t.technical...)
}

// SoftSkills returns the deduplicated soft-skill list
func (t *Taxonomy) SoftSkills() []string {
	return append([]string(nil), t.soft...)
}

// Matcher returns the whole-word pattern for skill: the precompiled one for a known skill,
// or a freshly compiled one for an ad-hoc term. A blank skill returns nil.
// Callers matching the same ad-hoc term repeatedly should hold on to the result.
func (t *Taxonomy) Matcher(skill string) *regexp.Regexp {
	key := strings.ToLower(strings.TrimSpace(skill))
	if key == "" {
		return nil
	}
	if re, ok := t.matchers[key]; ok {
		return re
	}
	return WholeWord(key)
}

// Contains reports whether skill appears in text as a whole word, ignoring case.
// "java" does not match inside "javascript".
func (t *Taxonomy) Contains(text, skill string) bool {
	re := t.Matcher(skill)
	return re != nil && re.MatchString(text)
}

// Index returns the byte offsets of the first whole-word occurrence of skill in text
func (t *Taxonomy) Index(text, skill string) (start, end int, ok bool) {
	re := t.Matcher(skill)
	if re == nil {
		return 0, 0, false
	}
	return locate(re, text)
}

// FindTechnical returns every technical skill present in text, in taxonomy order
func (t *Taxonomy) FindTechnical(text string) []string {
	return t.find(text, t.technical)
}

// FindSoft returns every soft skill present in text, in taxonomy order
func (t *Taxonomy) FindSoft(text string) []string {
	return t.find(text, t.soft)
}

func (t *Taxonomy) find(text string, skills []string) []string {
	found := make([]string, 0)
	for _, s := range skills {
		if t.matchers[s].MatchString(text) {
			found = append(found, s)
		}
	}
	return found
}

// Contains reports whether skill appears in text as a whole word using the default taxonomy
func Contains(text, skill string) bool {
	return Default().Contains(text, skill)
}
