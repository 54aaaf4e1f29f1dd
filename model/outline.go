package model

import (
	"strconv"
	"strings"
)

// Outline is a document's table of contents as stored in the package: a
// flat list of entries whose nesting is only implied by their levels.
type Outline struct {
	Entries []OutlineEntry
}

// OutlineEntry is one line of an outline. All fields are copied verbatim from
// markup and are nil when the attribute is absent.
type OutlineEntry struct {
	Level       *string
	Description *string
	Target      *string
}

// Depth returns the entry level as an integer. Missing, non-numeric and
// non-positive levels count as 1.
func (e OutlineEntry) Depth() int {
	if e.Level == nil {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(*e.Level))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// OutlineNode is an entry with the entries nested below it.
type OutlineNode struct {
	Entry    OutlineEntry
	Children []*OutlineNode
}

// Tree rebuilds the nesting of the outline from entry levels. An entry
// becomes a child of the closest preceding entry with a smaller depth.
func (o *Outline) Tree() []*OutlineNode {
	if o == nil {
		return nil
	}

	var roots []*OutlineNode
	var stack []*OutlineNode

	for _, entry := range o.Entries {
		node := &OutlineNode{Entry: entry}
		depth := entry.Depth()

		for len(stack) > 0 && stack[len(stack)-1].Entry.Depth() >= depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}

	return roots
}
