package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/cssom/douceuradapter"
)

// MediaList is the live view onto a media rule's query list. It follows
// its owning rule's connection state: while the rule is disconnected,
// reads serve the snapshot and mutations do nothing.
type MediaList struct {
	rule *Rule
}

func (m *MediaList) queries() []string {
	n := m.rule.node().rule
	if n == nil {
		return nil
	}
	return n.Queries
}

// MediaText returns the serialized media query list, e.g. "screen, print".
func (m *MediaList) MediaText() string {
	return strings.Join(m.queries(), ", ")
}

// SetMediaText replaces the whole query list. Malformed input is silently
// ignored.
func (m *MediaList) SetMediaText(text string) {
	m.rule.SetConditionText(text)
}

// Length returns the number of media queries in the list.
func (m *MediaList) Length() int {
	return len(m.queries())
}

// Item returns the media query at the given index, or "" if the index is
// out of range.
func (m *MediaList) Item(index int) string {
	queries := m.queries()
	if index < 0 || index >= len(queries) {
		return ""
	}
	return queries[index]
}

// AppendMedium appends a media query to the list. Malformed input is
// silently ignored, and a query already present is not appended twice.
func (m *MediaList) AppendMedium(medium string) {
	if !m.rule.connected() {
		return
	}
	n := m.rule.node().rule
	if n == nil {
		return
	}
	query, err := douceuradapter.ParseMediaQuery(medium)
	if err != nil {
		tracer().Debugf("appended medium rejected: %v", err)
		return
	}
	for _, q := range n.Queries {
		if q == query {
			return
		}
	}
	n.Queries = append(n.Queries, query)
}

// DeleteMedium removes all occurrences of a media query from the list. It
// returns ErrNotFound if nothing matched. Malformed input does nothing.
func (m *MediaList) DeleteMedium(medium string) error {
	if !m.rule.connected() {
		return nil
	}
	n := m.rule.node().rule
	if n == nil {
		return nil
	}
	query, err := douceuradapter.ParseMediaQuery(medium)
	if err != nil {
		return nil
	}
	kept := n.Queries[:0]
	for _, q := range n.Queries {
		if q != query {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(n.Queries) {
		return ErrNotFound
	}
	n.Queries = kept
	return nil
}
