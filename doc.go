/*
Package cssom implements a live, mutable CSS object model over one
stylesheet's rule tree.

A StyleSheet owns the parsed rule tree (package ruletree). Clients observe
and mutate it through handles: RuleList is an indexed view onto one
ordered rule sequence (the top level, or the children of a grouping or
@keyframes rule), Rule is the proxy for one rule or keyframe, and
StyleDeclaration and MediaList are views onto a style rule's declaration
block and a media rule's query list.

Handles are identity-stable: asking a list twice for the same index
returns the same Rule, and inserting or deleting rules re-indexes every
previously handed-out handle before the mutating call returns. A rule
deleted from the tree (or orphaned by ReplaceSync) transitions into a
disconnected state: it keeps a private snapshot of its last value, stays
readable, and ignores mutation. This is the CSSOM live-view contract; see
https://drafts.csswg.org/cssom/ for the underlying interface definitions.

All operations are synchronous and single-writer. Handles hold no locks;
the embedding caller serializes access.

Parsing and serialization are delegated to package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cssom

import (
	"errors"

	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssom.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("cssom.sheet")
}

// ErrIndexOutOfBounds is returned for index arguments outside the valid
// range of a rule list.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrNotFound is returned by delete-by-value operations (DeleteMedium)
// when nothing matched.
var ErrNotFound = errors.New("rule not found")

// ErrDetached is returned for structural mutations on a rule list whose
// owning rule has been disconnected from its stylesheet.
var ErrDetached = errors.New("rule list is detached from its stylesheet")

// ErrSyntax classifies input text rejected by the CSS grammar.
// It aliases the parsing boundary's sentinel so callers need not import
// package douceuradapter for error matching.
var ErrSyntax = douceuradapter.ErrSyntax

// RuleType tags the kind of rule a handle refers to, with the numeric
// values of the CSSOM type constants.
type RuleType int

// CSSOM rule type constants.
const (
	UnknownRule      RuleType = 0
	StyleRule        RuleType = 1
	ImportRule       RuleType = 3
	MediaRule        RuleType = 4
	FontFaceRule     RuleType = 5
	PageRule         RuleType = 6
	KeyframesRule    RuleType = 7
	KeyframeRule     RuleType = 8
	NamespaceRule    RuleType = 10
	CounterStyleRule RuleType = 11
	SupportsRule     RuleType = 12
	ViewportRule     RuleType = 15
)
