package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/xpsdoc"
	"github.com/tsawler/xpsdoc/model"
	"github.com/tsawler/xpsdoc/render"
)

// summary is the machine-readable description of a package.
type summary struct {
	File      string            `json:"file" yaml:"file" toml:"file"`
	Format    string            `json:"format" yaml:"format" toml:"format"`
	Title     string            `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Author    string            `json:"author,omitempty" yaml:"author,omitempty" toml:"author,omitempty"`
	Documents []documentSummary `json:"documents" yaml:"documents" toml:"documents"`
	Pages     int               `json:"pages" yaml:"pages" toml:"pages"`
	Stats     render.Stats      `json:"stats" yaml:"stats" toml:"stats"`
	Warnings  []string          `json:"warnings,omitempty" yaml:"warnings,omitempty" toml:"warnings,omitempty"`
}

type documentSummary struct {
	Pages   int `json:"pages" yaml:"pages" toml:"pages"`
	Outline int `json:"outline_entries" yaml:"outline_entries" toml:"outline_entries"`
}

// summarize collects counts and render statistics over every page of pkg.
func summarize(file string, pkg *xpsdoc.Package) (*summary, error) {
	s := &summary{
		File:   file,
		Format: pkg.Format.String(),
		Pages:  pkg.PageCount(),
	}
	if pkg.Metadata != nil {
		s.Title = pkg.Metadata.Title
		s.Author = pkg.Metadata.Author
	}

	for _, doc := range pkg.Documents() {
		ds := documentSummary{Pages: doc.PageCount()}
		if doc.Outline != nil {
			ds.Outline = len(doc.Outline.Entries)
		}
		s.Documents = append(s.Documents, ds)

		for _, page := range doc.Pages {
			if err := page.Render(&s.Stats); err != nil {
				return nil, fmt.Errorf("page %d: %w", page.Number, err)
			}
		}
	}

	for _, w := range pkg.Warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s, nil
}

// writeSummary encodes s to w in the named format.
func writeSummary(w io.Writer, s *summary, format string) error {
	switch format {
	case "text", "":
		return writeText(w, s)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(s)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, s *summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", pterm.Bold.Sprint(s.File), pterm.FgGray.Sprint("("+s.Format+")"))
	if s.Title != "" {
		fmt.Fprintf(&b, "Title:     %s\n", s.Title)
	}
	if s.Author != "" {
		fmt.Fprintf(&b, "Author:    %s\n", s.Author)
	}
	fmt.Fprintf(&b, "Documents: %d\n", len(s.Documents))
	fmt.Fprintf(&b, "Pages:     %d\n", s.Pages)
	for i, d := range s.Documents {
		fmt.Fprintf(&b, "  Document %d: %d pages, %d outline entries\n", i+1, d.Pages, d.Outline)
	}
	fmt.Fprintf(&b, "Nodes:     %d (%d groups, %d paths, %d text runs, depth %d)\n",
		s.Stats.Nodes(), s.Stats.Groups, s.Stats.Paths, s.Stats.TextRuns, s.Stats.MaxDepth)
	if len(s.Warnings) > 0 {
		fmt.Fprintf(&b, "%s\n", pterm.FgYellow.Sprint("Warnings:"))
		for _, msg := range s.Warnings {
			fmt.Fprintf(&b, "  - %s\n", msg)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// outlineTree renders an outline as an indented tree.
func outlineTree(o *model.Outline) (string, error) {
	if o == nil || len(o.Entries) == 0 {
		return "", nil
	}

	list := pterm.LeveledList{}
	for _, entry := range o.Entries {
		text := "(untitled)"
		if entry.Description != nil && *entry.Description != "" {
			text = *entry.Description
		}
		if entry.Target != nil && *entry.Target != "" {
			text += " -> " + *entry.Target
		}
		list = append(list, pterm.LeveledListItem{Level: entry.Depth() - 1, Text: text})
	}

	root := putils.TreeFromLeveledList(list)
	return pterm.DefaultTree.WithRoot(root).Srender()
}
