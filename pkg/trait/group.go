package trait

import (
	"github.com/samber/lo"
)

// Group is an immutable, ordered set of traits of one category.
type Group struct {
	id        string
	name      string
	icon      string
	category  Category
	canonical bool
	members   []*Trait
	index     map[string]struct{}
}

func newGroup(category Category, id, name, icon string, canonical bool, members []*Trait) *Group {
	members = lo.UniqBy(members, func(t *Trait) string { return t.id })
	return &Group{
		id:        id,
		name:      name,
		icon:      icon,
		category:  category,
		canonical: canonical,
		members:   members,
		index: lo.SliceToMap(members, func(t *Trait) (string, struct{}) {
			return t.id, struct{}{}
		}),
	}
}

// ID returns the stable identifier.
func (g *Group) ID() string { return g.id }

// Name returns the human-readable name.
func (g *Group) Name() string { return g.name }

// Icon returns a single glyph representing the group.
func (g *Group) Icon() string { return g.icon }

// Category returns the family of every member.
func (g *Group) Category() Category { return g.category }

// Canonical reports whether g holds the full membership of its category.
func (g *Group) Canonical() bool { return g.canonical }

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Members returns the members in declaration order.
func (g *Group) Members() []*Trait {
	out := make([]*Trait, len(g.members))
	copy(out, g.members)
	return out
}

// MemberIDs returns member ids in declaration order.
func (g *Group) MemberIDs() []string {
	return lo.Map(g.members, func(t *Trait, _ int) string { return t.id })
}

// Contains reports whether a trait with the given id is a member.
func (g *Group) Contains(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Info returns the group's descriptor.
func (g *Group) Info() GroupInfo {
	return GroupInfo{
		ID:        g.id,
		Name:      g.name,
		Icon:      g.icon,
		Category:  g.category,
		Canonical: g.canonical,
		Members:   g.MemberIDs(),
	}
}

// GroupInfo is the descriptor of a group.
type GroupInfo struct {
	ID        string   `json:"id" yaml:"id" toml:"id"`
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Icon      string   `json:"icon" yaml:"icon" toml:"icon"`
	Category  Category `json:"category" yaml:"category" toml:"category"`
	Canonical bool     `json:"canonical" yaml:"canonical" toml:"canonical"`
	Members   []string `json:"members" yaml:"members" toml:"members"`
}
