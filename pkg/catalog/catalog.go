package catalog

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// Catalog bundles the registries of every category, evaluated against one
// environment. It is immutable and safe for concurrent use.
type Catalog struct {
	env        trait.Env
	registries []*trait.Registry
	byCategory map[trait.Category]*trait.Registry
	traitOwner map[string]*trait.Registry
	groupOwner map[string]*trait.Registry
}

type options struct {
	logger *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used for detection diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// declarations returns fresh builders in category order.
func declarations() []*trait.Builder {
	return []*trait.Builder{
		architectures(),
		platforms(),
		shells(),
		terminals(),
		ciSystems(),
		agents(),
	}
}

// New builds every registry against env. A nil env reads the running process.
// Trait and group ids are unique across the whole catalog.
func New(env trait.Env, opts ...Option) (*Catalog, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if env == nil {
		env = trait.OSEnv{}
	}

	c := &Catalog{
		env:        env,
		byCategory: make(map[trait.Category]*trait.Registry),
		traitOwner: make(map[string]*trait.Registry),
		groupOwner: make(map[string]*trait.Registry),
	}

	for _, b := range declarations() {
		reg, err := b.WithEnv(env).WithLogger(o.logger).Build()
		if err != nil {
			return nil, errors.Wrap(err, "building registry")
		}
		if err := c.index(reg); err != nil {
			return nil, err
		}
		c.registries = append(c.registries, reg)
		c.byCategory[reg.Category()] = reg
	}

	return c, nil
}

func (c *Catalog) index(reg *trait.Registry) error {
	taken := func(id string) bool {
		_, t := c.traitOwner[id]
		_, g := c.groupOwner[id]
		return t || g
	}

	for _, t := range append(reg.All(), reg.Unknown()) {
		if taken(t.ID()) {
			return errors.Wrapf(errors.ErrDuplicateID, "%s %q", reg.Category(), t.ID())
		}
		c.traitOwner[t.ID()] = reg
	}
	for _, g := range reg.Groups() {
		if taken(g.ID()) {
			return errors.Wrapf(errors.ErrDuplicateID, "group %q", g.ID())
		}
		c.groupOwner[g.ID()] = reg
	}
	return nil
}

// Env returns the environment the catalog evaluates predicates against.
func (c *Catalog) Env() trait.Env { return c.env }

// Registry returns the registry of a category.
func (c *Catalog) Registry(category trait.Category) (*trait.Registry, error) {
	reg, ok := c.byCategory[category]
	if !ok {
		return nil, errors.Wrapf(trait.ErrNotFound, "category %q", category)
	}
	return reg, nil
}

// Registries returns every registry in category order.
func (c *Catalog) Registries() []*trait.Registry {
	out := make([]*trait.Registry, len(c.registries))
	copy(out, c.registries)
	return out
}

// Trait resolves a trait id in any category.
func (c *Catalog) Trait(id string) (*trait.Trait, error) {
	reg, ok := c.traitOwner[id]
	if !ok {
		return nil, errors.Wrapf(trait.ErrNotFound, "trait %q", id)
	}
	return reg.Get(id)
}

// Group resolves a group id in any category.
func (c *Catalog) Group(id string) (*trait.Group, error) {
	reg, ok := c.groupOwner[id]
	if !ok {
		return nil, errors.Wrapf(trait.ErrNotFound, "group %q", id)
	}
	return reg.Group(id)
}

// Traits returns every non-unknown trait, by category then declaration order.
func (c *Catalog) Traits() []*trait.Trait {
	return lo.FlatMap(c.registries, func(reg *trait.Registry, _ int) []*trait.Trait {
		return reg.All()
	})
}

// Groups returns every group, by category then Registry.Groups order.
func (c *Catalog) Groups() []*trait.Group {
	return lo.FlatMap(c.registries, func(reg *trait.Registry, _ int) []*trait.Group {
		return reg.Groups()
	})
}

// Current returns the current trait of every category, in category order.
func (c *Catalog) Current() []*trait.Trait {
	return lo.Map(c.registries, func(reg *trait.Registry, _ int) *trait.Trait {
		return reg.Current()
	})
}

// Is evaluates the predicate of a trait in any category.
func (c *Catalog) Is(id string) (bool, error) {
	reg, ok := c.traitOwner[id]
	if !ok {
		return false, errors.Wrapf(trait.ErrNotFound, "trait %q", id)
	}
	return reg.Is(id)
}

// IsMember reports whether a trait belongs to a group. Ids from different
// categories are valid and never members of each other.
func (c *Catalog) IsMember(traitID, groupID string) (bool, error) {
	if _, err := c.Trait(traitID); err != nil {
		return false, err
	}
	g, err := c.Group(groupID)
	if err != nil {
		return false, err
	}
	return g.Contains(traitID), nil
}

// Reduce reduces trait ids of any mix of categories. Output follows
// category order; within a category it follows Registry.Reduce.
func (c *Catalog) Reduce(ids []string) ([]string, error) {
	byCategory := make(map[trait.Category][]string)
	for _, id := range ids {
		reg, ok := c.traitOwner[id]
		if !ok {
			return nil, errors.Wrapf(trait.ErrNotFound, "trait %q", id)
		}
		byCategory[reg.Category()] = append(byCategory[reg.Category()], id)
	}

	var out []string
	for _, reg := range c.registries {
		part, ok := byCategory[reg.Category()]
		if !ok {
			continue
		}
		reduced, err := reg.Reduce(part)
		if err != nil {
			return nil, err
		}
		out = append(out, reduced...)
	}
	return out, nil
}
