package douceuradapter

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cssom/ruletree"
)

// ErrSyntax is the classification for every input text rejected by the
// CSS grammar. Concrete errors wrap it; match with errors.Is.
var ErrSyntax = errors.New("CSS syntax error")

func syntaxError(err error) error {
	return fmt.Errorf("%w: %v", ErrSyntax, err)
}

// ParseStylesheet parses the text of a whole stylesheet into a rule tree.
func ParseStylesheet(text string) (*ruletree.RuleTree, error) {
	if err := checkWellFormed(text); err != nil {
		return nil, err
	}
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, syntaxError(err)
	}
	tree := ruletree.NewRuleTree()
	tree.Rules = make([]*ruletree.RuleNode, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		node, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		tree.Rules = append(tree.Rules, node)
	}
	tracer().Debugf("parsed stylesheet with %d top-level rules", tree.Len())
	return tree, nil
}

// ParseRule parses text containing exactly one rule.
func ParseRule(text string) (*ruletree.RuleNode, error) {
	tree, err := ParseStylesheet(text)
	if err != nil {
		return nil, err
	}
	if tree.Len() != 1 {
		return nil, fmt.Errorf("%w: expected exactly one rule, got %d", ErrSyntax, tree.Len())
	}
	node, _ := tree.Rule(0)
	return node, nil
}

// ParseKeyframe parses the text of one keyframe, e.g. "50% { top: 0 }".
func ParseKeyframe(text string) (*ruletree.KeyframeNode, error) {
	// A keyframe is not a rule douceur accepts at the top level, so it is
	// parsed inside a synthetic @keyframes wrapper.
	node, err := ParseRule("@keyframes x {" + text + "}")
	if err != nil {
		return nil, err
	}
	if node.Kind != ruletree.KeyframesKind || node.KeyframeCount() != 1 {
		return nil, fmt.Errorf("%w: expected exactly one keyframe", ErrSyntax)
	}
	kf, _ := node.Keyframe(0)
	return kf, nil
}

// ParseDeclarations parses the inner text of a declaration block,
// e.g. "color: red; top: 0".
func ParseDeclarations(text string) ([]*css.Declaration, error) {
	// douceur's bare declaration scanner drops the value (and the
	// important flag) of an unterminated final declaration, so the block
	// is parsed through the rule path inside a synthetic wrapper.
	node, err := ParseRule("x {" + text + "}")
	if err != nil {
		return nil, err
	}
	if node.Kind != ruletree.StyleKind {
		return nil, fmt.Errorf("%w: expected a declaration block", ErrSyntax)
	}
	return node.Declarations, nil
}

// checkWellFormed pre-scans stylesheet text for token errors, unbalanced
// braces and trailing block-less rule text. douceur's parser is forgiving
// about all three, silently producing truncated rules.
func checkWellFormed(text string) error {
	depth := 0
	pending := false // prelude text seen at the top level, block still open
	s := scanner.New(text)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return fmt.Errorf("%w: unbalanced braces", ErrSyntax)
			}
			if pending {
				return fmt.Errorf("%w: rule without a block", ErrSyntax)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
		case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC:
			// not part of any rule
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				if depth == 0 && !pending {
					return fmt.Errorf("%w: block without a prelude", ErrSyntax)
				}
				depth++
				pending = false
			case "}":
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: unbalanced braces", ErrSyntax)
				}
			case ";":
				if depth == 0 {
					pending = false // statement at-rule
				}
			default:
				if depth == 0 {
					pending = true
				}
			}
		default:
			if depth == 0 {
				pending = true
			}
		}
	}
}

// checkDeclarations rejects declaration artifacts douceur accepts without
// complaint: blocks where a declaration lost its property name or value.
func checkDeclarations(decls []*css.Declaration) error {
	for _, d := range decls {
		if strings.TrimSpace(d.Property) == "" || strings.TrimSpace(d.Value) == "" {
			return fmt.Errorf("%w: malformed declaration %q", ErrSyntax, d.String())
		}
	}
	return nil
}

// --- douceur rule conversion -------------------------------------------

// Statement and declaration-block at-rule kinds passed through without
// detailed modeling.
var atRuleKinds = map[string]ruletree.Kind{
	"@import":        ruletree.ImportKind,
	"@font-face":     ruletree.FontFaceKind,
	"@page":          ruletree.PageKind,
	"@namespace":     ruletree.NamespaceKind,
	"@counter-style": ruletree.CounterStyleKind,
	"@viewport":      ruletree.ViewportKind,
}

func convertRule(r *css.Rule) (*ruletree.RuleNode, error) {
	if r.Kind == css.QualifiedRule {
		selectors, err := ParseSelectorList(strings.Join(r.Selectors, ", "))
		if err != nil {
			return nil, err
		}
		if err := checkDeclarations(r.Declarations); err != nil {
			return nil, err
		}
		return &ruletree.RuleNode{
			Kind:         ruletree.StyleKind,
			Selectors:    selectors,
			Declarations: r.Declarations,
		}, nil
	}
	switch r.Name {
	case "@media":
		queries, err := ParseMediaQueryList(r.Prelude)
		if err != nil {
			return nil, err
		}
		children, err := convertChildren(r.Rules)
		if err != nil {
			return nil, err
		}
		return &ruletree.RuleNode{
			Kind:     ruletree.MediaKind,
			Queries:  queries,
			Children: children,
		}, nil
	case "@supports":
		children, err := convertChildren(r.Rules)
		if err != nil {
			return nil, err
		}
		return &ruletree.RuleNode{
			Kind:      ruletree.SupportsKind,
			Condition: strings.TrimSpace(r.Prelude),
			Children:  children,
		}, nil
	case "@keyframes":
		return convertKeyframes(r)
	}
	if err := checkDeclarations(r.Declarations); err != nil {
		return nil, err
	}
	node := &ruletree.RuleNode{
		Kind:         atRuleKinds[r.Name], // zero value is UnknownKind
		Name:         r.Name,
		Prelude:      strings.TrimSpace(r.Prelude),
		Declarations: r.Declarations,
	}
	if r.Rules != nil {
		children, err := convertChildren(r.Rules)
		if err != nil {
			return nil, err
		}
		node.Children = children
	}
	return node, nil
}

func convertChildren(rules []*css.Rule) ([]*ruletree.RuleNode, error) {
	children := make([]*ruletree.RuleNode, 0, len(rules))
	for _, r := range rules {
		node, err := convertRule(r)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return children, nil
}

func convertKeyframes(r *css.Rule) (*ruletree.RuleNode, error) {
	node := &ruletree.RuleNode{
		Kind: ruletree.KeyframesKind,
		Name: strings.TrimSpace(r.Prelude),
	}
	node.Keyframes = make([]*ruletree.KeyframeNode, 0, len(r.Rules))
	for _, child := range r.Rules {
		if child.Kind != css.QualifiedRule {
			return nil, fmt.Errorf("%w: @keyframes may only contain keyframes, got %s",
				ErrSyntax, child.Name)
		}
		selectors, err := ParseKeyframeSelectors(child.Prelude)
		if err != nil {
			return nil, err
		}
		if err := checkDeclarations(child.Declarations); err != nil {
			return nil, err
		}
		node.Keyframes = append(node.Keyframes, &ruletree.KeyframeNode{
			Selectors:    selectors,
			Declarations: child.Declarations,
		})
	}
	return node, nil
}
