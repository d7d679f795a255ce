package trait

import (
	"log/slog"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
)

// DefaultUnknownIcon is the icon given to unknown sentinels.
const DefaultUnknownIcon = "❓"

type pendingGroup struct {
	id, name, icon string
	memberIDs      []string
}

// Builder assembles a Registry. It is not safe for concurrent use; the
// Registry it produces is.
type Builder struct {
	category      Category
	unknownName   string
	unknownIcon   string
	canonicalName string
	canonicalIcon string
	traits        []*Trait
	groups        []pendingGroup
	env           Env
	logger        *slog.Logger
}

// NewBuilder starts a registry for category.
func NewBuilder(category Category) *Builder {
	return &Builder{
		category:      category,
		unknownName:   "Unknown " + string(category),
		unknownIcon:   DefaultUnknownIcon,
		canonicalName: "All " + category.Plural(),
		canonicalIcon: DefaultUnknownIcon,
	}
}

// Unknown sets the name and icon of the unknown sentinel.
func (b *Builder) Unknown(name, icon string) *Builder {
	b.unknownName, b.unknownIcon = name, icon
	return b
}

// Canonical sets the name and icon of the canonical group.
func (b *Builder) Canonical(name, icon string) *Builder {
	b.canonicalName, b.canonicalIcon = name, icon
	return b
}

// Add registers traits in declaration order.
func (b *Builder) Add(traits ...*Trait) *Builder {
	b.traits = append(b.traits, traits...)
	return b
}

// Group declares a non-canonical group over already or later added traits.
func (b *Builder) Group(id, name, icon string, memberIDs ...string) *Builder {
	b.groups = append(b.groups, pendingGroup{id: id, name: name, icon: icon, memberIDs: memberIDs})
	return b
}

// WithEnv sets the environment predicates read. Defaults to OSEnv.
func (b *Builder) WithEnv(env Env) *Builder {
	b.env = env
	return b
}

// WithLogger sets the logger used for detection diagnostics.
// Defaults to slog.Default at call time.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// Build validates the declarations and returns the immutable registry.
func (b *Builder) Build() (*Registry, error) {
	if !b.category.Valid() {
		return nil, errors.Wrapf(ErrNotFound, "category %q", b.category)
	}

	env := b.env
	if env == nil {
		env = OSEnv{}
	}

	r := &Registry{
		category:  b.category,
		traits:    make([]*Trait, 0, len(b.traits)),
		unknown:   newUnknown(b.category, b.unknownName, b.unknownIcon),
		byID:      make(map[string]*Trait, len(b.traits)+1),
		groupByID: make(map[string]*Group, len(b.groups)+1),
		env:       env,
		logger:    b.logger,
	}
	r.unknown.registry = r
	r.byID[r.unknown.id] = r.unknown

	for _, t := range b.traits {
		if t == nil {
			return nil, errors.Wrap(ErrInvalidID, "nil trait")
		}
		if !ValidID(t.id) {
			return nil, errors.Wrapf(ErrInvalidID, "trait %q", t.id)
		}
		if t.category != b.category {
			return nil, errors.Wrapf(ErrCategoryMismatch,
				"trait %q is a %s, registry holds %s", t.id, t.category, b.category)
		}
		if _, dup := r.byID[t.id]; dup {
			return nil, errors.Wrapf(ErrDuplicateID, "trait %q", t.id)
		}
		if t.registry != nil {
			return nil, errors.Wrapf(ErrDuplicateID, "trait %q already belongs to a registry", t.id)
		}
		r.byID[t.id] = t
		r.traits = append(r.traits, t)
	}

	canonical := newGroup(b.category, b.category.CanonicalID(), b.canonicalName, b.canonicalIcon, true, r.traits)
	if err := r.addGroup(canonical); err != nil {
		return nil, err
	}

	for _, pg := range b.groups {
		members := make([]*Trait, 0, len(pg.memberIDs))
		for _, id := range pg.memberIDs {
			t, ok := r.byID[id]
			if !ok {
				return nil, errors.Wrapf(ErrNotFound, "group %q member %q", pg.id, id)
			}
			if t.IsUnknown() {
				return nil, errors.Wrapf(ErrInvalidID,
					"group %q cannot contain the unknown sentinel", pg.id)
			}
			members = append(members, t)
		}
		if err := r.addGroup(newGroup(b.category, pg.id, pg.name, pg.icon, false, members)); err != nil {
			return nil, err
		}
	}

	// Bind last: a failed Build leaves the traits unbound.
	for _, t := range r.traits {
		t.registry = r
	}

	return r, nil
}

func (r *Registry) addGroup(g *Group) error {
	if !ValidID(g.id) {
		return errors.Wrapf(ErrInvalidID, "group %q", g.id)
	}
	if _, dup := r.groupByID[g.id]; dup {
		return errors.Wrapf(ErrDuplicateID, "group %q", g.id)
	}
	if _, clash := r.byID[g.id]; clash {
		return errors.Wrapf(ErrDuplicateID, "group %q collides with a trait id", g.id)
	}
	r.groupByID[g.id] = g
	r.groups = append(r.groups, g)
	return nil
}
