package ruletree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/aymerick/douceur/css"
)

// Kind discriminates the variants of a RuleNode.
type Kind int

// Rule node kinds. StyleKind through KeyframesKind are modeled in detail;
// the remaining at-rule kinds are passed through with their raw prelude
// and declaration block.
const (
	UnknownKind Kind = iota
	StyleKind
	MediaKind
	SupportsKind
	KeyframesKind
	ImportKind
	FontFaceKind
	PageKind
	NamespaceKind
	CounterStyleKind
	ViewportKind
)

func (k Kind) String() string {
	switch k {
	case StyleKind:
		return "style"
	case MediaKind:
		return "media"
	case SupportsKind:
		return "supports"
	case KeyframesKind:
		return "keyframes"
	case ImportKind:
		return "import"
	case FontFaceKind:
		return "font-face"
	case PageKind:
		return "page"
	case NamespaceKind:
		return "namespace"
	case CounterStyleKind:
		return "counter-style"
	case ViewportKind:
		return "viewport"
	}
	return "unknown"
}

// RuleNode is a tagged union over the rule kinds of a stylesheet.
// Which fields are populated depends on Kind:
//
//   StyleKind      Selectors, Declarations
//   MediaKind      Queries, Children
//   SupportsKind   Condition, Children
//   KeyframesKind  Name, Keyframes
//   other at-rules Name, Prelude, Declarations
//
// Declaration blocks use douceur's declaration type; they are produced and
// consumed only through package douceuradapter.
type RuleNode struct {
	Kind         Kind
	Selectors    []string           // style rules: selector list
	Declarations []*css.Declaration // style rules and declaration-block at-rules
	Queries      []string           // @media: media query list
	Condition    string             // @supports: condition text
	Name         string             // @keyframes: name; passthrough at-rules: "@import" etc.
	Prelude      string             // passthrough at-rules: raw prelude
	Children     []*RuleNode        // grouping rules: nested rule sequence
	Keyframes    []*KeyframeNode    // @keyframes: keyframe list
}

// KeyframeNode is one keyframe of a @keyframes rule.
type KeyframeNode struct {
	Selectors    []KeyframeSelector
	Declarations []*css.Declaration
}

// KeyframeSelector is a keyframe offset as a percentage in 0…100.
// The keywords "from" and "to" normalize to 0 and 100.
type KeyframeSelector float64

func (s KeyframeSelector) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "%"
}

// SelectorsEqual compares two keyframe selector lists for ordered equality.
func SelectorsEqual(a, b []KeyframeSelector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsGrouping is true for rule kinds owning a nested sequence of child
// rules (media and supports blocks).
func (n *RuleNode) IsGrouping() bool {
	return n.Kind == MediaKind || n.Kind == SupportsKind
}

// --- Child sequence of grouping rules ----------------------------------

// ChildCount returns the number of child rules of a grouping rule.
func (n *RuleNode) ChildCount() int {
	return len(n.Children)
}

// Child returns the child rule at position i.
func (n *RuleNode) Child(i int) (*RuleNode, bool) {
	if i < 0 || i >= len(n.Children) {
		return nil, false
	}
	return n.Children[i], true
}

// InsertChildAt inserts a child rule at position i, shifting children at
// later positions. i must be in 0…ChildCount.
func (n *RuleNode) InsertChildAt(i int, ch *RuleNode) bool {
	if ch == nil || i < 0 || i > len(n.Children) {
		return false
	}
	n.Children = append(n.Children, nil) // make room for one child
	copy(n.Children[i+1:], n.Children[i:])
	n.Children[i] = ch
	return true
}

// RemoveChildAt removes and returns the child rule at position i.
func (n *RuleNode) RemoveChildAt(i int) (*RuleNode, bool) {
	if i < 0 || i >= len(n.Children) {
		return nil, false
	}
	ch := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	return ch, true
}

// --- Keyframe sequence of @keyframes rules -----------------------------

// KeyframeCount returns the number of keyframes of a @keyframes rule.
func (n *RuleNode) KeyframeCount() int {
	return len(n.Keyframes)
}

// Keyframe returns the keyframe at position i.
func (n *RuleNode) Keyframe(i int) (*KeyframeNode, bool) {
	if i < 0 || i >= len(n.Keyframes) {
		return nil, false
	}
	return n.Keyframes[i], true
}

// InsertKeyframeAt inserts a keyframe at position i, shifting keyframes at
// later positions. i must be in 0…KeyframeCount.
func (n *RuleNode) InsertKeyframeAt(i int, kf *KeyframeNode) bool {
	if kf == nil || i < 0 || i > len(n.Keyframes) {
		return false
	}
	n.Keyframes = append(n.Keyframes, nil)
	copy(n.Keyframes[i+1:], n.Keyframes[i:])
	n.Keyframes[i] = kf
	return true
}

// RemoveKeyframeAt removes and returns the keyframe at position i.
func (n *RuleNode) RemoveKeyframeAt(i int) (*KeyframeNode, bool) {
	if i < 0 || i >= len(n.Keyframes) {
		return nil, false
	}
	kf := n.Keyframes[i]
	n.Keyframes = append(n.Keyframes[:i], n.Keyframes[i+1:]...)
	return kf, true
}

// --- Snapshots ---------------------------------------------------------

// Clone returns a deep copy of a rule node. Disconnected handles own such
// a copy as their snapshot.
func (n *RuleNode) Clone() *RuleNode {
	if n == nil {
		return nil
	}
	c := &RuleNode{
		Kind:      n.Kind,
		Condition: n.Condition,
		Name:      n.Name,
		Prelude:   n.Prelude,
	}
	if n.Selectors != nil {
		c.Selectors = append([]string{}, n.Selectors...)
	}
	if n.Queries != nil {
		c.Queries = append([]string{}, n.Queries...)
	}
	c.Declarations = cloneDeclarations(n.Declarations)
	if n.Children != nil {
		c.Children = make([]*RuleNode, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	if n.Keyframes != nil {
		c.Keyframes = make([]*KeyframeNode, len(n.Keyframes))
		for i, kf := range n.Keyframes {
			c.Keyframes[i] = kf.Clone()
		}
	}
	return c
}

// Clone returns a deep copy of a keyframe node.
func (kf *KeyframeNode) Clone() *KeyframeNode {
	if kf == nil {
		return nil
	}
	c := &KeyframeNode{}
	if kf.Selectors != nil {
		c.Selectors = append([]KeyframeSelector{}, kf.Selectors...)
	}
	c.Declarations = cloneDeclarations(kf.Declarations)
	return c
}

func cloneDeclarations(decls []*css.Declaration) []*css.Declaration {
	if decls == nil {
		return nil
	}
	c := make([]*css.Declaration, len(decls))
	for i, d := range decls {
		dd := *d
		c[i] = &dd
	}
	return c
}
