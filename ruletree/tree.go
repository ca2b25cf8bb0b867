package ruletree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// RuleTree is the single owned representation of one stylesheet: an
// ordered sequence of top-level rule nodes. A tree is held exclusively by
// one stylesheet handle at a time; replacing the stylesheet's text swaps
// the whole tree.
type RuleTree struct {
	Rules []*RuleNode
}

// NewRuleTree creates an empty rule tree.
func NewRuleTree() *RuleTree {
	return &RuleTree{}
}

// Len returns the number of top-level rules.
func (t *RuleTree) Len() int {
	return len(t.Rules)
}

// Rule returns the top-level rule at position i.
func (t *RuleTree) Rule(i int) (*RuleNode, bool) {
	if i < 0 || i >= len(t.Rules) {
		return nil, false
	}
	return t.Rules[i], true
}

// InsertAt inserts a rule at position i, shifting rules at later
// positions. i must be in 0…Len.
func (t *RuleTree) InsertAt(i int, n *RuleNode) bool {
	if n == nil || i < 0 || i > len(t.Rules) {
		return false
	}
	tracer().Debugf("rule tree: insert %s rule at %d", n.Kind, i)
	t.Rules = append(t.Rules, nil)
	copy(t.Rules[i+1:], t.Rules[i:])
	t.Rules[i] = n
	return true
}

// RemoveAt removes and returns the rule at position i.
func (t *RuleTree) RemoveAt(i int) (*RuleNode, bool) {
	if i < 0 || i >= len(t.Rules) {
		return nil, false
	}
	n := t.Rules[i]
	tracer().Debugf("rule tree: remove %s rule at %d", n.Kind, i)
	t.Rules = append(t.Rules[:i], t.Rules[i+1:]...)
	return n, true
}
