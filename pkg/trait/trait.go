package trait

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
)

// Category names the family a trait belongs to.
type Category string

// Supported categories.
const (
	CategoryArchitecture Category = "architecture"
	CategoryPlatform     Category = "platform"
	CategoryShell        Category = "shell"
	CategoryTerminal     Category = "terminal"
	CategoryCI           Category = "ci"
	CategoryAgent        Category = "agent"
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryArchitecture,
		CategoryPlatform,
		CategoryShell,
		CategoryTerminal,
		CategoryCI,
		CategoryAgent,
	}
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryArchitecture, CategoryPlatform, CategoryShell,
		CategoryTerminal, CategoryCI, CategoryAgent:
		return true
	}
	return false
}

// Plural returns the plural form used in canonical group ids.
func (c Category) Plural() string {
	if c == CategoryCI {
		return "ci"
	}
	return string(c) + "s"
}

// UnknownID returns the id of the category's unknown sentinel, e.g. "unknown_agent".
func (c Category) UnknownID() string {
	return "unknown_" + string(c)
}

// CanonicalID returns the id of the category's canonical group, e.g. "all_agents".
func (c Category) CanonicalID() string {
	return "all_" + c.Plural()
}

// ParseCategory resolves a singular or plural category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if s == string(c) || s == c.Plural() {
			return c, nil
		}
	}
	return "", errors.Wrapf(errors.ErrNotFound, "category %q", s)
}

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// ValidID reports whether id is a lowercase, underscore-separated token.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// DetectFunc reports whether a trait matches the given environment.
// Implementations read env only and return false when a probe is unavailable.
type DetectFunc func(env Env) bool

// Trait is an immutable descriptor of a recognized agent, platform, shell,
// terminal, CI system or architecture.
type Trait struct {
	id       string
	name     string
	icon     string
	url      string
	category Category
	detect   DetectFunc

	// registry is set once by Builder.Build and never changed afterwards.
	registry *Registry
}

// New creates a trait. A nil detect never matches.
func New(category Category, id, name, icon, url string, detect DetectFunc) *Trait {
	return &Trait{
		id:       id,
		name:     name,
		icon:     icon,
		url:      url,
		category: category,
		detect:   detect,
	}
}

// newUnknown creates the sentinel of a category.
func newUnknown(category Category, name, icon string) *Trait {
	return New(category, category.UnknownID(), name, icon, "", nil)
}

// ID returns the stable identifier.
func (t *Trait) ID() string { return t.id }

// Name returns the human-readable name.
func (t *Trait) Name() string { return t.name }

// Icon returns a single glyph representing the trait.
func (t *Trait) Icon() string { return t.icon }

// URL returns the project homepage, or an empty string.
func (t *Trait) URL() string { return t.url }

// Category returns the family the trait belongs to.
func (t *Trait) Category() Category { return t.category }

// IsUnknown reports whether t is its category's unknown sentinel.
func (t *Trait) IsUnknown() bool { return t.id == t.category.UnknownID() }

// Detect evaluates the predicate against env.
// A predicate that panics is reported as not matching.
func (t *Trait) Detect(env Env) bool {
	ok, _ := t.probe(env)
	return ok
}

// probe evaluates the predicate and returns the recovered panic value, if any.
func (t *Trait) probe(env Env) (ok bool, recovered any) {
	if t.detect == nil {
		return false, nil
	}
	defer func() {
		if p := recover(); p != nil {
			ok, recovered = false, p
		}
	}()
	return t.detect(env), nil
}

// Info returns the trait's descriptor. Current is true iff t is the
// current trait of the registry it was built into.
func (t *Trait) Info() Info {
	info := Info{
		ID:       t.id,
		Name:     t.name,
		Icon:     t.icon,
		URL:      t.url,
		Category: t.category,
	}
	if t.registry != nil {
		info.Current = t.registry.Current() == t
	}
	return info
}

// String implements fmt.Stringer.
func (t *Trait) String() string {
	return fmt.Sprintf("%s %s (%s)", t.icon, t.name, t.id)
}

// Info is the descriptor of a trait.
type Info struct {
	ID       string   `json:"id" yaml:"id" toml:"id"`
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Icon     string   `json:"icon" yaml:"icon" toml:"icon"`
	URL      string   `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	Category Category `json:"category" yaml:"category" toml:"category"`
	Current  bool     `json:"current" yaml:"current" toml:"current"`
}

// Map returns the descriptor as field name to value. URL is omitted when empty.
func (i Info) Map() map[string]any {
	m := map[string]any{
		"id":       i.ID,
		"name":     i.Name,
		"icon":     i.Icon,
		"category": string(i.Category),
		"current":  i.Current,
	}
	if i.URL != "" {
		m["url"] = i.URL
	}
	return m
}
