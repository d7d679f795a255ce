package trait

import (
	"slices"

	"github.com/samber/lo"
)

// Reduce returns the shortest description of the given traits: every group
// whose members are all present is replaced by its id, largest groups
// first. Remaining trait ids follow the group ids in declaration order.
// Duplicate ids are ignored.
func (r *Registry) Reduce(ids []string) ([]string, error) {
	remaining := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, err := r.Get(id); err != nil {
			return nil, err
		}
		remaining[id] = struct{}{}
	}

	// Canonical first, then by size; stable so declaration order breaks ties.
	candidates := r.Groups()
	slices.SortStableFunc(candidates[1:], func(a, b *Group) int {
		return b.Len() - a.Len()
	})

	var out []string
	for _, g := range candidates {
		if g.Len() == 0 {
			continue
		}
		covered := lo.EveryBy(g.members, func(t *Trait) bool {
			_, ok := remaining[t.id]
			return ok
		})
		if !covered {
			continue
		}
		out = append(out, g.id)
		for _, t := range g.members {
			delete(remaining, t.id)
		}
	}

	for _, t := range append(r.All(), r.unknown) {
		if _, ok := remaining[t.id]; ok {
			out = append(out, t.id)
		}
	}
	return out, nil
}
