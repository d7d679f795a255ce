package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

var (
	searchInteractive bool
	searchLimit       int
)

func init() {
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false,
		"pick a result with an interactive fuzzy finder")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0,
		"maximum number of results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Fuzzy search traits and groups",
	Long: `Search trait and group ids and names with fuzzy matching. Results are
ranked best first.

With --interactive, a fuzzy finder opens with the query pre-filled and the
selected entry is shown in detail.`,
	Example: `  # Anything shell-related
  extra-platforms search shell

  # Browse everything
  extra-platforms search --interactive

See Also: extra-platforms show, extra-platforms list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) > 0 {
			query = args[0]
		}
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		if searchInteractive {
			return runInteractiveSearch(p, cat, query)
		}
		return runSearch(p, cat, query, searchLimit)
	},
}

// entry is a searchable trait or group.
type entry struct {
	id       string
	name     string
	icon     string
	kind     string
	category trait.Category
}

func (e entry) String() string {
	return e.id + " " + e.name
}

type entries []entry

func (e entries) String(i int) string { return e[i].String() }

func (e entries) Len() int { return len(e) }

func searchEntries(cat *catalog.Catalog) entries {
	var out entries
	for _, t := range cat.Traits() {
		out = append(out, entry{id: t.ID(), name: t.Name(), icon: t.Icon(), kind: output.KindTrait, category: t.Category()})
	}
	for _, g := range cat.Groups() {
		out = append(out, entry{id: g.ID(), name: g.Name(), icon: g.Icon(), kind: output.KindGroup, category: g.Category()})
	}
	return out
}

func rank(all entries, query string) []output.Match {
	var matches []output.Match
	if strings.TrimSpace(query) == "" {
		for _, e := range all {
			matches = append(matches, matchOf(e, 0))
		}
		return matches
	}
	for _, m := range fuzzy.FindFrom(query, all) {
		matches = append(matches, matchOf(all[m.Index], m.Score))
	}
	return matches
}

func matchOf(e entry, score int) output.Match {
	return output.Match{ID: e.id, Name: e.name, Icon: e.icon, Kind: e.kind, Category: e.category, Score: score}
}

func runSearch(p *output.Printer, cat *catalog.Catalog, query string, limit int) error {
	matches := rank(searchEntries(cat), query)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return p.Matches(matches)
}

func runInteractiveSearch(p *output.Printer, cat *catalog.Catalog, query string) error {
	all := searchEntries(cat)

	idx, err := fuzzyfinder.Find(
		all,
		func(i int) string {
			return fmt.Sprintf("%s %s (%s)", all[i].icon, all[i].id, all[i].kind)
		},
		fuzzyfinder.WithQuery(query),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return preview(cat, all[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive search failed")
	}

	return runShow(p, cat, all[idx].id)
}

func preview(cat *catalog.Catalog, e entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\nID: %s\nKind: %s\nCategory: %s\n", e.icon, e.name, e.id, e.kind, e.category)
	switch e.kind {
	case output.KindGroup:
		if g, err := cat.Group(e.id); err == nil {
			fmt.Fprintf(&b, "\nMembers:\n  %s\n", strings.Join(g.MemberIDs(), "\n  "))
		}
	default:
		if t, err := cat.Trait(e.id); err == nil {
			if t.URL() != "" {
				fmt.Fprintf(&b, "URL: %s\n", t.URL())
			}
			if ok, err := cat.Is(e.id); err == nil {
				fmt.Fprintf(&b, "Current: %t\n", ok)
			}
		}
	}
	return b.String()
}
