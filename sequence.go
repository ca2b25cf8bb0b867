package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/cssom/ruletree"

// nodeRef addresses one occupant of a rule sequence: either a rule node
// or, for @keyframes lists, a keyframe node. Exactly one side is set.
type nodeRef struct {
	rule     *ruletree.RuleNode
	keyframe *ruletree.KeyframeNode
}

func (ref nodeRef) isNil() bool {
	return ref.rule == nil && ref.keyframe == nil
}

// clone deep-copies the referenced node; disconnected handles own such a
// copy as their snapshot.
func (ref nodeRef) clone() nodeRef {
	return nodeRef{rule: ref.rule.Clone(), keyframe: ref.keyframe.Clone()}
}

// text serializes the referenced node.
func (ref nodeRef) text() string {
	if ref.keyframe != nil {
		return ref.keyframe.String()
	}
	if ref.rule != nil {
		return ref.rule.String()
	}
	return ""
}

// sequence addresses one ordered sequence inside the rule tree: the
// stylesheet's top-level sequence, or the children/keyframes of an owner
// node. It never caches a slice; every access resolves through its anchor,
// so mutations elsewhere in the tree cannot leave it dangling and a
// replaced tree is picked up automatically by the top-level sequence.
type sequence struct {
	sheet *StyleSheet        // top-level anchor; nil for nested sequences
	owner *ruletree.RuleNode // nested anchor: a grouping or @keyframes node
}

func (q sequence) isKeyframes() bool {
	return q.owner != nil && q.owner.Kind == ruletree.KeyframesKind
}

func (q sequence) length() int {
	switch {
	case q.owner == nil:
		return q.sheet.tree.Len()
	case q.isKeyframes():
		return q.owner.KeyframeCount()
	}
	return q.owner.ChildCount()
}

func (q sequence) ref(i int) nodeRef {
	switch {
	case q.owner == nil:
		n, _ := q.sheet.tree.Rule(i)
		return nodeRef{rule: n}
	case q.isKeyframes():
		kf, _ := q.owner.Keyframe(i)
		return nodeRef{keyframe: kf}
	}
	n, _ := q.owner.Child(i)
	return nodeRef{rule: n}
}

func (q sequence) insert(i int, ref nodeRef) bool {
	switch {
	case q.owner == nil:
		return q.sheet.tree.InsertAt(i, ref.rule)
	case q.isKeyframes():
		return q.owner.InsertKeyframeAt(i, ref.keyframe)
	}
	return q.owner.InsertChildAt(i, ref.rule)
}

func (q sequence) remove(i int) bool {
	switch {
	case q.owner == nil:
		_, ok := q.sheet.tree.RemoveAt(i)
		return ok
	case q.isKeyframes():
		_, ok := q.owner.RemoveKeyframeAt(i)
		return ok
	}
	_, ok := q.owner.RemoveChildAt(i)
	return ok
}
