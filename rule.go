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
	"github.com/npillmayer/cssom/ruletree"
)

// Rule is the externally observable proxy for one rule or keyframe.
//
// A connected rule addresses live storage through its rule list and
// current index; a disconnected rule owns a private snapshot of its last
// value. Disconnection happens when the rule's slot is deleted, when an
// enclosing rule is deleted, or when the whole stylesheet is replaced. It
// is terminal: a disconnected rule stays readable (CSSText and the
// per-kind getters keep working against the snapshot) but all its mutating
// operations are no-ops.
//
// Which accessors are meaningful depends on Type; accessors of a foreign
// kind return zero values and setters of a foreign kind do nothing.
type Rule struct {
	list     *RuleList // nil once disconnected
	index    int
	snapshot nodeRef // the owned last value of a disconnected rule
	parent   *Rule
	sheet    *StyleSheet
	children *RuleList // cached nested view (grouping/keyframes kinds)
	style    *StyleDeclaration
	media    *MediaList
}

func (r *Rule) connected() bool {
	return r.list != nil
}

// node resolves the rule's current occupant: through the rule list while
// connected, from the snapshot afterwards.
func (r *Rule) node() nodeRef {
	if r.list != nil {
		return r.list.seq.ref(r.index)
	}
	return r.snapshot
}

// disconnect transitions a connected rule to the disconnected state,
// capturing a snapshot of its current value. Materialized handles of
// descendant rule lists are disconnected first (each with its own
// snapshot), then the nested list is re-anchored at the snapshot so it
// remains readable.
func (r *Rule) disconnect() {
	if r.list == nil {
		return
	}
	tracer().Debugf("disconnecting %s rule at index %d", r.node().text(), r.index)
	if r.children != nil {
		r.children.disconnectAll()
	}
	snap := r.node().clone()
	r.snapshot = snap
	r.list = nil
	r.index = 0
	r.parent = nil
	r.sheet = nil
	if r.children != nil {
		r.children.detach(snap.rule)
	}
}

// Type returns the CSSOM type tag of the underlying rule.
func (r *Rule) Type() RuleType {
	ref := r.node()
	if ref.keyframe != nil {
		return KeyframeRule
	}
	if ref.rule == nil {
		return UnknownRule
	}
	switch ref.rule.Kind {
	case ruletree.StyleKind:
		return StyleRule
	case ruletree.ImportKind:
		return ImportRule
	case ruletree.MediaKind:
		return MediaRule
	case ruletree.FontFaceKind:
		return FontFaceRule
	case ruletree.PageKind:
		return PageRule
	case ruletree.KeyframesKind:
		return KeyframesRule
	case ruletree.NamespaceKind:
		return NamespaceRule
	case ruletree.CounterStyleKind:
		return CounterStyleRule
	case ruletree.SupportsKind:
		return SupportsRule
	case ruletree.ViewportKind:
		return ViewportRule
	}
	return UnknownRule
}

// CSSText returns the serialized form of the rule. For a disconnected rule
// this is the last value before disconnection.
func (r *Rule) CSSText() string {
	return r.node().text()
}

// SetCSSText does nothing: on setting, the cssText attribute must do
// nothing (CSSOM §6.4.3).
func (r *Rule) SetCSSText(string) {}

// ParentRule returns the enclosing grouping or @keyframes rule, or nil at
// the top level and once disconnected.
func (r *Rule) ParentRule() *Rule {
	return r.parent
}

// ParentStyleSheet returns the owning stylesheet, or nil once
// disconnected.
func (r *Rule) ParentStyleSheet() *StyleSheet {
	return r.sheet
}

// --- Style rules -------------------------------------------------------

// SelectorText returns the selector list of a style rule.
func (r *Rule) SelectorText() string {
	n := r.node().rule
	if n == nil || n.Kind != ruletree.StyleKind {
		return ""
	}
	return strings.Join(n.Selectors, ", ")
}

// SetSelectorText replaces the selector list of a style rule. Malformed
// input is silently ignored, retaining the prior selectors.
func (r *Rule) SetSelectorText(text string) {
	if !r.connected() {
		return
	}
	n := r.node().rule
	if n == nil || n.Kind != ruletree.StyleKind {
		return
	}
	selectors, err := douceuradapter.ParseSelectorList(text)
	if err != nil {
		tracer().Debugf("selector text rejected: %v", err)
		return
	}
	n.Selectors = selectors
}

// Style returns the declaration view of a style rule or keyframe, created
// once and cached thereafter.
func (r *Rule) Style() *StyleDeclaration {
	ref := r.node()
	if ref.keyframe == nil && (ref.rule == nil || ref.rule.Kind != ruletree.StyleKind) {
		return nil
	}
	if r.style == nil {
		r.style = &StyleDeclaration{rule: r}
	}
	return r.style
}

// --- Grouping and condition rules --------------------------------------

// CSSRules returns the nested rule list of a grouping or @keyframes rule,
// created once and cached thereafter. For other kinds it returns nil.
func (r *Rule) CSSRules() *RuleList {
	n := r.node().rule
	if n == nil || (!n.IsGrouping() && n.Kind != ruletree.KeyframesKind) {
		return nil
	}
	if r.children == nil {
		if r.connected() {
			r.children = &RuleList{seq: sequence{owner: n}, parent: r, sheet: r.sheet}
		} else {
			r.children = &RuleList{seq: sequence{owner: n}, detached: true}
		}
	}
	return r.children
}

// ConditionText returns the condition of a media or supports rule.
func (r *Rule) ConditionText() string {
	n := r.node().rule
	if n == nil {
		return ""
	}
	switch n.Kind {
	case ruletree.MediaKind:
		return strings.Join(n.Queries, ", ")
	case ruletree.SupportsKind:
		return n.Condition
	}
	return ""
}

// SetConditionText replaces the media query list of a media rule.
// Malformed input is silently ignored. A supports rule's condition is not
// settable; the call does nothing (matching WebKit, CSSOM leaves it
// undefined).
func (r *Rule) SetConditionText(text string) {
	if !r.connected() {
		return
	}
	n := r.node().rule
	if n == nil || n.Kind != ruletree.MediaKind {
		return
	}
	queries, err := douceuradapter.ParseMediaQueryList(text)
	if err != nil {
		tracer().Debugf("condition text rejected: %v", err)
		return
	}
	n.Queries = queries
}

// Media returns the media list view of a media rule, created once and
// cached thereafter.
func (r *Rule) Media() *MediaList {
	n := r.node().rule
	if n == nil || n.Kind != ruletree.MediaKind {
		return nil
	}
	if r.media == nil {
		r.media = &MediaList{rule: r}
	}
	return r.media
}

// --- Keyframes rules ---------------------------------------------------

// Name returns the name of a @keyframes rule.
func (r *Rule) Name() string {
	n := r.node().rule
	if n == nil || n.Kind != ruletree.KeyframesKind {
		return ""
	}
	return n.Name
}

// SetName renames a @keyframes rule.
func (r *Rule) SetName(name string) {
	if !r.connected() {
		return
	}
	n := r.node().rule
	if n == nil || n.Kind != ruletree.KeyframesKind {
		return
	}
	n.Name = name
}

// FindRule returns the last keyframe matching the given key text, or nil.
// Unparseable key text counts as not found. Matching the last occurrence
// implements the override semantics of keyframes with identical keys.
func (r *Rule) FindRule(selectorText string) *Rule {
	n := r.node().rule
	if n == nil || n.Kind != ruletree.KeyframesKind {
		return nil
	}
	index := findKeyframeIndex(n, selectorText)
	if index < 0 {
		return nil
	}
	return r.CSSRules().Item(index)
}

// AppendRule parses one keyframe and appends it to the keyframe list.
// Parse failures are silently ignored.
func (r *Rule) AppendRule(text string) {
	if !r.connected() {
		return
	}
	n := r.node().rule
	if n == nil || n.Kind != ruletree.KeyframesKind {
		return
	}
	kf, err := douceuradapter.ParseKeyframe(text)
	if err != nil {
		tracer().Debugf("appended keyframe rejected: %v", err)
		return
	}
	list := r.CSSRules()
	list.insertNode(list.Length(), nodeRef{keyframe: kf})
}

// DeleteRule removes the last keyframe matching the given key text.
// Unparseable or unmatched key text does nothing.
func (r *Rule) DeleteRule(selectorText string) {
	if !r.connected() {
		return
	}
	n := r.node().rule
	if n == nil || n.Kind != ruletree.KeyframesKind {
		return
	}
	index := findKeyframeIndex(n, selectorText)
	if index < 0 {
		return
	}
	r.CSSRules().removeAt(index)
}

func findKeyframeIndex(n *ruletree.RuleNode, selectorText string) int {
	selectors, err := douceuradapter.ParseKeyframeSelectors(selectorText)
	if err != nil {
		return -1
	}
	for i := n.KeyframeCount() - 1; i >= 0; i-- {
		kf, _ := n.Keyframe(i)
		if ruletree.SelectorsEqual(kf.Selectors, selectors) {
			return i
		}
	}
	return -1
}

// --- Keyframes ---------------------------------------------------------

// KeyText returns the key text of a keyframe, e.g. "0%, 50%".
func (r *Rule) KeyText() string {
	kf := r.node().keyframe
	if kf == nil {
		return ""
	}
	return ruletree.KeyTextOf(kf.Selectors)
}

// SetKeyText replaces the keyframe's selector list. Malformed input is
// silently ignored, retaining the prior keys.
func (r *Rule) SetKeyText(text string) {
	if !r.connected() {
		return
	}
	kf := r.node().keyframe
	if kf == nil {
		return
	}
	selectors, err := douceuradapter.ParseKeyframeSelectors(text)
	if err != nil {
		tracer().Debugf("key text rejected: %v", err)
		return
	}
	kf.Selectors = selectors
}
