package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/cssom/ruletree"
)

// StyleSheet is the root owner of one stylesheet's rule tree and the entry
// point into the object model. The zero value is not usable; construct
// with NewStyleSheet or Parse.
type StyleSheet struct {
	tree  *ruletree.RuleTree
	rules *RuleList // cached top-level view
}

// NewStyleSheet creates an empty stylesheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{tree: ruletree.NewRuleTree()}
}

// Parse creates a stylesheet from CSS text.
func Parse(text string) (*StyleSheet, error) {
	tree, err := douceuradapter.ParseStylesheet(text)
	if err != nil {
		return nil, err
	}
	return &StyleSheet{tree: tree}, nil
}

// ReplaceSync replaces the stylesheet's contents with the given text.
// Replacement is all-or-nothing: on a syntax error the previous tree is
// left intact and the error (wrapping ErrSyntax) is returned. On success,
// every handle materialized against the old tree is disconnected with a
// snapshot of its pre-replace value before the new tree is installed.
func (s *StyleSheet) ReplaceSync(text string) error {
	tree, err := douceuradapter.ParseStylesheet(text)
	if err != nil {
		return err
	}
	if s.rules != nil {
		s.rules.disconnectAll()
		s.rules.cache.reset()
	}
	tracer().Debugf("replacing stylesheet, new tree has %d rules", tree.Len())
	s.tree = tree
	return nil
}

// CSSRules returns the live view over the stylesheet's top-level rules,
// created once and cached thereafter.
func (s *StyleSheet) CSSRules() *RuleList {
	if s.rules == nil {
		s.rules = &RuleList{seq: sequence{sheet: s}, sheet: s}
	}
	return s.rules
}

// InsertRule parses the given rule text and inserts the rule at the given
// index of the top-level list, returning the index used.
func (s *StyleSheet) InsertRule(rule string, index int) (int, error) {
	return s.CSSRules().InsertRule(rule, index)
}

// DeleteRule removes the top-level rule at the given index.
func (s *StyleSheet) DeleteRule(index int) error {
	return s.CSSRules().DeleteRule(index)
}

// AddRule is the legacy spelling of InsertRule, assembling a style rule
// from a selector and a declaration block. Per the CSSOM legacy contract
// it always reports -1, never the computed insertion index.
func (s *StyleSheet) AddRule(selector string, block string, index int) (int, error) {
	if _, err := s.InsertRule(selector+" { "+block+" }", index); err != nil {
		return -1, err
	}
	return -1, nil
}

// RemoveRule is the legacy spelling of DeleteRule.
func (s *StyleSheet) RemoveRule(index int) error {
	return s.DeleteRule(index)
}

// String serializes the whole stylesheet.
func (s *StyleSheet) String() string {
	return s.tree.String()
}
