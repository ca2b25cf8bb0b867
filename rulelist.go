package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/cssom/ruletree"
)

// RuleList is an indexed, length-queryable live view onto one ordered rule
// sequence: the stylesheet's top level, or the children of a grouping or
// @keyframes rule. It pairs the sequence with an identity cache, so Item
// returns the same handle for the same index until the slot's occupant is
// structurally mutated.
//
// A list whose owning rule has been disconnected is detached: it still
// serves reads from the rule's snapshot, but rejects structural mutation
// with ErrDetached.
type RuleList struct {
	seq      sequence
	cache    identityCache
	parent   *Rule // enclosing grouping/keyframes rule, nil at the top level
	sheet    *StyleSheet
	detached bool
}

// Length returns the current number of rules in the list.
func (l *RuleList) Length() int {
	return l.seq.length()
}

// Item returns the rule handle at the given index, or nil if the index is
// out of range. Repeated calls for an unchanged index return the same
// handle.
func (l *RuleList) Item(index int) *Rule {
	if index < 0 || index >= l.seq.length() {
		return nil
	}
	if r := l.cache.at(index); r != nil {
		return r
	}
	var r *Rule
	if l.detached {
		// Reads from a snapshot: handles are born disconnected.
		r = &Rule{snapshot: l.seq.ref(index)}
	} else {
		r = &Rule{list: l, index: index, parent: l.parent, sheet: l.sheet}
	}
	l.cache.put(index, r)
	return r
}

// InsertRule parses the given rule text and inserts the rule at the given
// index, shifting later rules (and the indices of their handles) up by
// one. It returns the index used. Inside a @keyframes rule the text must
// be a single keyframe; everywhere else, a single rule.
func (l *RuleList) InsertRule(rule string, index int) (int, error) {
	if l.detached {
		return 0, ErrDetached
	}
	if index < 0 || index > l.seq.length() {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	var ref nodeRef
	if l.seq.isKeyframes() {
		kf, err := douceuradapter.ParseKeyframe(rule)
		if err != nil {
			return 0, err
		}
		ref = nodeRef{keyframe: kf}
	} else {
		node, err := douceuradapter.ParseRule(rule)
		if err != nil {
			return 0, err
		}
		ref = nodeRef{rule: node}
	}
	l.insertNode(index, ref)
	return index, nil
}

// DeleteRule removes the rule at the given index. A materialized handle
// for that slot is disconnected with a snapshot of its last value; handles
// at later indices shift down by one.
func (l *RuleList) DeleteRule(index int) error {
	if l.detached {
		return ErrDetached
	}
	if index < 0 || index >= l.seq.length() {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	l.removeAt(index)
	return nil
}

// insertNode shifts the cache and inserts a pre-parsed node. Bounds have
// been validated by the caller.
func (l *RuleList) insertNode(index int, ref nodeRef) {
	l.cache.onInsert(index)
	l.seq.insert(index, ref)
}

// removeAt disconnects the slot's handle (if materialized), shifts the
// cache, and removes the node from the sequence. Bounds have been
// validated by the caller.
func (l *RuleList) removeAt(index int) {
	if r := l.cache.at(index); r != nil {
		r.disconnect()
	}
	l.cache.onRemove(index)
	l.seq.remove(index)
}

// disconnectAll disconnects every materialized handle of this list,
// cascading into nested lists.
func (l *RuleList) disconnectAll() {
	l.cache.each(func(r *Rule) { r.disconnect() })
}

// detach re-anchors the list at the disconnected owner's snapshot. Cached
// handles stay in place (they are disconnected already), so identity
// remains stable for slots observed before the disconnect.
func (l *RuleList) detach(owner *ruletree.RuleNode) {
	l.detached = true
	l.seq = sequence{owner: owner}
	l.parent = nil
	l.sheet = nil
}
