package douceuradapter

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/gorilla/css/scanner"
	"github.com/npillmayer/cssom/ruletree"
)

// ParseSelectorList validates a selector list with cascadia and splits it
// into its individual selectors, e.g. ".a, .b:hover" → [".a", ".b:hover"].
func ParseSelectorList(text string) ([]string, error) {
	if _, err := cascadia.ParseGroup(text); err != nil {
		return nil, syntaxError(err)
	}
	parts, err := splitTopLevel(text)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty selector list", ErrSyntax)
	}
	return parts, nil
}

// ParseMediaQueryList splits a media query list on top-level commas,
// normalizing whitespace, and checks each query's structural shape.
// Empty input yields an empty list.
func ParseMediaQueryList(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	parts, err := splitTopLevel(text)
	if err != nil {
		return nil, err
	}
	for _, query := range parts {
		if err := validateMediaQuery(query); err != nil {
			return nil, err
		}
	}
	return parts, nil
}

// ParseMediaQuery parses a single media query, e.g. for appendMedium.
func ParseMediaQuery(text string) (string, error) {
	parts, err := splitTopLevel(text)
	if err != nil {
		return "", err
	}
	if len(parts) != 1 {
		return "", fmt.Errorf("%w: expected a single media query", ErrSyntax)
	}
	if err := validateMediaQuery(parts[0]); err != nil {
		return "", err
	}
	return parts[0], nil
}

// validateMediaQuery checks the structural shape of one media query:
// optional "only"/"not" prefixes, then media types or parenthesized
// features joined by "and". Names are not checked against a feature
// vocabulary; an unknown media type is a valid query that never matches.
func validateMediaQuery(query string) error {
	s := scanner.New(query)
	depth := 0
	expectTerm := true
	sawTerm := false
	for {
		tok := s.Next()
		if depth > 0 { // inside a feature, swallow everything balanced
			switch tok.Type {
			case scanner.TokenEOF:
				return fmt.Errorf("%w: unbalanced parentheses in media query %q", ErrSyntax, query)
			case scanner.TokenError:
				return fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
			case scanner.TokenFunction:
				depth++
			case scanner.TokenChar:
				switch tok.Value {
				case "(":
					depth++
				case ")":
					depth--
					if depth == 0 {
						sawTerm = true
						expectTerm = false
					}
				}
			}
			continue
		}
		switch tok.Type {
		case scanner.TokenEOF:
			if !sawTerm || expectTerm {
				return fmt.Errorf("%w: malformed media query %q", ErrSyntax, query)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
		case scanner.TokenS, scanner.TokenComment:
			continue
		case scanner.TokenIdent:
			word := strings.ToLower(tok.Value)
			switch {
			case expectTerm && (word == "only" || word == "not"):
				// prefix keyword, the term is still to come
			case expectTerm && word == "and":
				return fmt.Errorf("%w: malformed media query %q", ErrSyntax, query)
			case expectTerm:
				sawTerm = true
				expectTerm = false
			case word == "and":
				expectTerm = true
			default:
				return fmt.Errorf("%w: malformed media query %q", ErrSyntax, query)
			}
		case scanner.TokenChar:
			if tok.Value == "(" && expectTerm {
				depth++
				continue
			}
			return fmt.Errorf("%w: unexpected %q in media query %q", ErrSyntax, tok.Value, query)
		default:
			return fmt.Errorf("%w: unexpected %q in media query %q", ErrSyntax, tok.Value, query)
		}
	}
}

// ParseKeyframeSelectors parses a comma-separated list of keyframe
// selectors: percentages or the keywords "from" and "to".
func ParseKeyframeSelectors(text string) ([]ruletree.KeyframeSelector, error) {
	var selectors []ruletree.KeyframeSelector
	s := scanner.New(text)
	expectSelector := true
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if expectSelector {
				return nil, fmt.Errorf("%w: missing keyframe selector", ErrSyntax)
			}
			return selectors, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
		case scanner.TokenS, scanner.TokenComment:
			continue
		case scanner.TokenPercentage:
			if !expectSelector {
				return nil, fmt.Errorf("%w: expected comma before %q", ErrSyntax, tok.Value)
			}
			pcnt, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
			if err != nil || pcnt < 0 || pcnt > 100 {
				return nil, fmt.Errorf("%w: invalid keyframe offset %q", ErrSyntax, tok.Value)
			}
			selectors = append(selectors, ruletree.KeyframeSelector(pcnt))
			expectSelector = false
		case scanner.TokenIdent:
			if !expectSelector {
				return nil, fmt.Errorf("%w: expected comma before %q", ErrSyntax, tok.Value)
			}
			switch strings.ToLower(tok.Value) {
			case "from":
				selectors = append(selectors, ruletree.KeyframeSelector(0))
			case "to":
				selectors = append(selectors, ruletree.KeyframeSelector(100))
			default:
				return nil, fmt.Errorf("%w: invalid keyframe selector %q", ErrSyntax, tok.Value)
			}
			expectSelector = false
		case scanner.TokenChar:
			if tok.Value == "," && !expectSelector {
				expectSelector = true
				continue
			}
			return nil, fmt.Errorf("%w: unexpected %q in keyframe selector", ErrSyntax, tok.Value)
		default:
			return nil, fmt.Errorf("%w: unexpected %q in keyframe selector", ErrSyntax, tok.Value)
		}
	}
}

// splitTopLevel tokenizes text and splits it at commas outside of
// parentheses and brackets. Whitespace runs collapse to a single blank.
func splitTopLevel(text string) ([]string, error) {
	var parts []string
	var current strings.Builder
	depth := 0
	s := scanner.New(text)
	flush := func() error {
		part := strings.TrimSpace(current.String())
		if part == "" {
			return fmt.Errorf("%w: empty list entry in %q", ErrSyntax, text)
		}
		parts = append(parts, part)
		current.Reset()
		return nil
	}
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if err := flush(); err != nil {
				return nil, err
			}
			if depth != 0 {
				return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, text)
			}
			return parts, nil
		case scanner.TokenError:
			return nil, fmt.Errorf("%w: %s", ErrSyntax, tok.Value)
		case scanner.TokenS:
			current.WriteString(" ")
		case scanner.TokenComment:
			continue
		case scanner.TokenFunction:
			depth++
			current.WriteString(tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case "(", "[":
				depth++
			case ")", "]":
				depth--
				if depth < 0 {
					return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, text)
				}
			case "{", "}", ";":
				return nil, fmt.Errorf("%w: unexpected %q in %q", ErrSyntax, tok.Value, text)
			case ",":
				if depth == 0 {
					if err := flush(); err != nil {
						return nil, err
					}
					continue
				}
			}
			current.WriteString(tok.Value)
		default:
			current.WriteString(tok.Value)
		}
	}
}
