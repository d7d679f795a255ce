package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// TraitDetail is a trait descriptor with the groups it belongs to.
type TraitDetail struct {
	trait.Info `yaml:",inline"`
	Groups     []string `json:"groups" yaml:"groups" toml:"groups"`
}

type traitList struct {
	Traits []trait.Info `json:"traits" yaml:"traits" toml:"traits"`
}

type groupList struct {
	Groups []trait.GroupInfo `json:"groups" yaml:"groups" toml:"groups"`
}

type detailList struct {
	Traits []TraitDetail `json:"traits" yaml:"traits" toml:"traits"`
}

type matchList struct {
	Matches []Match `json:"matches" yaml:"matches" toml:"matches"`
}

// Match is one search hit, a trait or a group.
type Match struct {
	ID       string         `json:"id" yaml:"id" toml:"id"`
	Name     string         `json:"name" yaml:"name" toml:"name"`
	Icon     string         `json:"icon" yaml:"icon" toml:"icon"`
	Kind     string         `json:"kind" yaml:"kind" toml:"kind"`
	Category trait.Category `json:"category" yaml:"category" toml:"category"`
	Score    int            `json:"score" yaml:"score" toml:"score"`
}

// Match kinds.
const (
	KindTrait = "trait"
	KindGroup = "group"
)

type idList struct {
	IDs []string `json:"ids" yaml:"ids" toml:"ids"`
}

// Printer writes registry data in one format.
type Printer struct {
	w      io.Writer
	format Format

	header  *color.Color
	current *color.Color
	dim     *color.Color
}

// NewPrinter returns a printer writing format to w. useColor only affects
// text output.
func NewPrinter(w io.Writer, format Format, useColor bool) *Printer {
	p := &Printer{
		w:       w,
		format:  format,
		header:  color.New(color.Bold),
		current: color.New(color.FgGreen, color.Bold),
		dim:     color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.header, p.current, p.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the destination of the printer.
func (p *Printer) Writer() io.Writer { return p.w }

// Format returns the printer's format.
func (p *Printer) Format() Format { return p.format }

// Structured reports whether the printer emits a machine-readable format.
func (p *Printer) Structured() bool { return p.format != FormatText }

// Encode writes v as JSON, YAML or TOML. Text falls back to YAML.
func (p *Printer) Encode(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding json")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(p.w).Encode(v), "encoding toml")
	default:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	}
}

// Traits writes a table of trait descriptors. The current trait of each
// category is highlighted.
func (p *Printer) Traits(infos []trait.Info) error {
	if p.Structured() {
		if infos == nil {
			infos = []trait.Info{}
		}
		return p.Encode(traitList{Traits: infos})
	}

	if len(infos) == 0 {
		fmt.Fprintln(p.w, "No traits found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, p.header.Sprint("ICON\tID\tNAME\tCATEGORY\tCURRENT"))
	for _, info := range infos {
		mark := ""
		id := info.ID
		if info.Current {
			mark = "✓"
			id = p.current.Sprint(id)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", info.Icon, id, info.Name, info.Category, mark)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

// Details writes a table of traits with the groups each belongs to.
func (p *Printer) Details(details []TraitDetail) error {
	if p.Structured() {
		for i := range details {
			if details[i].Groups == nil {
				details[i].Groups = []string{}
			}
		}
		if details == nil {
			details = []TraitDetail{}
		}
		return p.Encode(detailList{Traits: details})
	}

	if len(details) == 0 {
		fmt.Fprintln(p.w, "No traits found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, p.header.Sprint("ICON\tID\tNAME\tCATEGORY\tGROUPS"))
	for _, d := range details {
		id := d.ID
		if d.Current {
			id = p.current.Sprint(id)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			d.Icon, id, d.Name, d.Category, strings.Join(d.Groups, ", "))
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

// Matches writes search hits, best first.
func (p *Printer) Matches(matches []Match) error {
	if p.Structured() {
		if matches == nil {
			matches = []Match{}
		}
		return p.Encode(matchList{Matches: matches})
	}

	if len(matches) == 0 {
		fmt.Fprintln(p.w, "No matches found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, p.header.Sprint("ICON\tID\tNAME\tKIND\tCATEGORY"))
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			m.Icon, m.ID, m.Name, p.dim.Sprint(m.Kind), m.Category)
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

// Groups writes a table of group descriptors with their member ids.
func (p *Printer) Groups(infos []trait.GroupInfo) error {
	if p.Structured() {
		if infos == nil {
			infos = []trait.GroupInfo{}
		}
		return p.Encode(groupList{Groups: infos})
	}

	if len(infos) == 0 {
		fmt.Fprintln(p.w, "No groups found.")
		return nil
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, p.header.Sprint("ICON\tID\tNAME\tCATEGORY\tMEMBERS"))
	for _, info := range infos {
		id := info.ID
		if info.Canonical {
			id += p.dim.Sprint(" (canonical)")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			info.Icon, id, info.Name, info.Category, strings.Join(info.Members, ", "))
	}
	return errors.Wrap(tw.Flush(), "writing table")
}

// Trait writes the detail view of one trait.
func (p *Printer) Trait(detail TraitDetail) error {
	if p.Structured() {
		if detail.Groups == nil {
			detail.Groups = []string{}
		}
		return p.Encode(detail)
	}

	fmt.Fprintf(p.w, "%s %s\n", detail.Icon, p.header.Sprint(detail.Name))
	rows := [][2]string{
		{"id", detail.ID},
		{"category", string(detail.Category)},
		{"url", detail.URL},
		{"current", fmt.Sprint(detail.Current)},
		{"groups", strings.Join(detail.Groups, ", ")},
	}
	return p.fields(rows)
}

// Group writes the detail view of one group.
func (p *Printer) Group(info trait.GroupInfo) error {
	if p.Structured() {
		return p.Encode(info)
	}

	fmt.Fprintf(p.w, "%s %s\n", info.Icon, p.header.Sprint(info.Name))
	rows := [][2]string{
		{"id", info.ID},
		{"category", string(info.Category)},
		{"canonical", fmt.Sprint(info.Canonical)},
		{"members", strings.Join(info.Members, ", ")},
	}
	return p.fields(rows)
}

// IDs writes a list of ids, one per line in text.
func (p *Printer) IDs(ids []string) error {
	if p.Structured() {
		if ids == nil {
			ids = []string{}
		}
		return p.Encode(idList{IDs: ids})
	}
	for _, id := range ids {
		fmt.Fprintln(p.w, id)
	}
	return nil
}

func (p *Printer) fields(rows [][2]string) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 1, ' ', 0)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		fmt.Fprintf(tw, "  %s:\t%s\n", p.dim.Sprint(row[0]), row[1])
	}
	return errors.Wrap(tw.Flush(), "writing fields")
}
