package trait

import (
	"context"
	"log/slog"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
)

// Errors returned (wrapped) by the registry and its Builder.
var (
	// ErrNotFound: a trait or group id is not registered.
	ErrNotFound = errors.ErrNotFound
	// ErrInvalidID: an id does not match the identifier pattern.
	ErrInvalidID = errors.ErrInvalidID
	// ErrDuplicateID: an id is registered more than once.
	ErrDuplicateID = errors.ErrDuplicateID
	// ErrCategoryMismatch: a trait was added to a registry of another category.
	ErrCategoryMismatch = errors.ErrCategoryMismatch
)

// Registry holds the traits and groups of one category.
//
// A Registry is immutable once built, so it is safe for concurrent use
// without locking.
type Registry struct {
	category  Category
	traits    []*Trait
	unknown   *Trait
	byID      map[string]*Trait
	groups    []*Group
	groupByID map[string]*Group
	env       Env
	logger    *slog.Logger
}

// Category returns the family the registry serves.
func (r *Registry) Category() Category { return r.category }

// Env returns the environment predicates are evaluated against.
func (r *Registry) Env() Env { return r.env }

// Unknown returns the category's unknown sentinel.
func (r *Registry) Unknown() *Trait { return r.unknown }

// Get returns the trait registered under id. The unknown sentinel is
// resolvable by its id.
func (r *Registry) Get(id string) (*Trait, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%s %q", r.category, id)
	}
	return t, nil
}

// All returns every trait except the unknown sentinel, in declaration order.
func (r *Registry) All() []*Trait {
	out := make([]*Trait, len(r.traits))
	copy(out, r.traits)
	return out
}

// Current returns the first trait, in declaration order, whose predicate
// matches the registry's environment. It returns the unknown sentinel when
// nothing matches.
func (r *Registry) Current() *Trait {
	for _, t := range r.traits {
		if r.detect(t) {
			r.log().Debug("current trait detected", "category", string(r.category), "id", t.id)
			return t
		}
	}
	r.log().Debug("no trait detected", "category", string(r.category), "fallback", r.unknown.id)
	return r.unknown
}

// Is evaluates the predicate of a single trait. For the unknown sentinel it
// reports whether no other trait of the category matches.
func (r *Registry) Is(id string) (bool, error) {
	t, err := r.Get(id)
	if err != nil {
		return false, err
	}
	if t.IsUnknown() {
		return r.Current() == t, nil
	}
	return r.detect(t), nil
}

// Info returns the descriptor of the trait registered under id.
func (r *Registry) Info(id string) (Info, error) {
	t, err := r.Get(id)
	if err != nil {
		return Info{}, err
	}
	return t.Info(), nil
}

// Group returns the group registered under id.
func (r *Registry) Group(id string) (*Group, error) {
	g, ok := r.groupByID[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "group %q", id)
	}
	return g, nil
}

// Groups returns every group, canonical first, then in declaration order.
func (r *Registry) Groups() []*Group {
	out := make([]*Group, len(r.groups))
	copy(out, r.groups)
	return out
}

// Canonical returns the group holding every non-unknown trait.
func (r *Registry) Canonical() *Group {
	return r.groups[0]
}

// IsMember reports whether the trait belongs to the group.
// Both ids must be registered.
func (r *Registry) IsMember(traitID, groupID string) (bool, error) {
	if _, err := r.Get(traitID); err != nil {
		return false, err
	}
	g, err := r.Group(groupID)
	if err != nil {
		return false, err
	}
	return g.Contains(traitID), nil
}

// GroupsOf returns every group containing the trait, in Groups order.
func (r *Registry) GroupsOf(traitID string) ([]*Group, error) {
	if _, err := r.Get(traitID); err != nil {
		return nil, err
	}
	var out []*Group
	for _, g := range r.groups {
		if g.Contains(traitID) {
			out = append(out, g)
		}
	}
	return out, nil
}

// Evaluation is the outcome of one predicate.
type Evaluation struct {
	Trait *Trait
	Match bool
	// Panic holds the value recovered from a panicking predicate.
	Panic any
}

// Evaluate runs every predicate, without stopping at the first match, in
// declaration order. More than one match means later traits are shadowed.
func (r *Registry) Evaluate() []Evaluation {
	out := make([]Evaluation, len(r.traits))
	for i, t := range r.traits {
		ok, recovered := t.probe(r.env)
		r.log().Log(context.Background(), logging.LevelTrace, "predicate evaluated",
			"category", string(r.category), "id", t.id, "match", ok)
		out[i] = Evaluation{Trait: t, Match: ok, Panic: recovered}
	}
	return out
}

// detect evaluates a predicate, logging and swallowing panics.
func (r *Registry) detect(t *Trait) bool {
	ok, recovered := t.probe(r.env)
	if recovered != nil {
		r.log().Warn("detection predicate panicked",
			"category", string(r.category), "id", t.id, "panic", recovered)
	}
	return ok
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
