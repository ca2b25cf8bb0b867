package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/cssom/douceuradapter"
	"github.com/npillmayer/cssom/ruletree"
)

// StyleDeclaration is the live view onto the declaration block of a style
// rule or a keyframe. It follows its owning rule's connection state: while
// the rule is disconnected, reads serve the snapshot and mutations do
// nothing.
//
// Declarations are counted and itemized as written; shorthand properties
// are not expanded into longhands (that would need a property database,
// which the parsing engine does not carry).
type StyleDeclaration struct {
	rule *Rule
}

// ParentRule returns the style rule this declaration block belongs to.
func (d *StyleDeclaration) ParentRule() *Rule {
	return d.rule
}

func (d *StyleDeclaration) decls() []*css.Declaration {
	ref := d.rule.node()
	if ref.keyframe != nil {
		return ref.keyframe.Declarations
	}
	if ref.rule != nil {
		return ref.rule.Declarations
	}
	return nil
}

func (d *StyleDeclaration) setDecls(decls []*css.Declaration) {
	ref := d.rule.node()
	if ref.keyframe != nil {
		ref.keyframe.Declarations = decls
		return
	}
	if ref.rule != nil {
		ref.rule.Declarations = decls
	}
}

// CSSText returns the declaration block's text without the surrounding
// braces, e.g. "color: red; top: 0;".
func (d *StyleDeclaration) CSSText() string {
	return ruletree.DeclarationsText(d.decls())
}

// SetCSSText replaces the whole declaration block. Malformed input is
// silently ignored, retaining the prior block.
func (d *StyleDeclaration) SetCSSText(text string) {
	if !d.rule.connected() {
		return
	}
	decls, err := douceuradapter.ParseDeclarations(text)
	if err != nil {
		tracer().Debugf("declaration block rejected: %v", err)
		return
	}
	d.setDecls(decls)
}

// Length returns the number of declarations.
func (d *StyleDeclaration) Length() int {
	return len(d.decls())
}

// Item returns the property name of the declaration at the given index,
// or "" if the index is out of range.
func (d *StyleDeclaration) Item(index int) string {
	decls := d.decls()
	if index < 0 || index >= len(decls) {
		return ""
	}
	return decls[index].Property
}

// GetPropertyValue returns the value of the last declaration for the
// given property name, or "" if the property is not set.
func (d *StyleDeclaration) GetPropertyValue(property string) string {
	decls := d.decls()
	for i := len(decls) - 1; i >= 0; i-- {
		if strings.EqualFold(decls[i].Property, property) {
			return decls[i].Value
		}
	}
	return ""
}

// GetPropertyPriority returns "important" if the last declaration for the
// given property carries the important flag, "" otherwise.
func (d *StyleDeclaration) GetPropertyPriority(property string) string {
	decls := d.decls()
	for i := len(decls) - 1; i >= 0; i-- {
		if strings.EqualFold(decls[i].Property, property) {
			if decls[i].Important {
				return "important"
			}
			return ""
		}
	}
	return ""
}

// SetProperty sets a property value, updating the last declaration for
// the name in place or appending a new one. priority is "important" or
// "". An empty value removes the property.
func (d *StyleDeclaration) SetProperty(property string, value string, priority string) {
	if !d.rule.connected() {
		return
	}
	if strings.TrimSpace(value) == "" {
		d.RemoveProperty(property)
		return
	}
	decls := d.decls()
	important := strings.EqualFold(priority, "important")
	for i := len(decls) - 1; i >= 0; i-- {
		if strings.EqualFold(decls[i].Property, property) {
			decls[i].Value = value
			decls[i].Important = important
			return
		}
	}
	d.setDecls(append(decls, &css.Declaration{
		Property:  property,
		Value:     value,
		Important: important,
	}))
}

// RemoveProperty removes all declarations for the given property name and
// returns the value the property had, or "".
func (d *StyleDeclaration) RemoveProperty(property string) string {
	if !d.rule.connected() {
		return ""
	}
	previous := d.GetPropertyValue(property)
	decls := d.decls()
	kept := decls[:0]
	for _, decl := range decls {
		if !strings.EqualFold(decl.Property, property) {
			kept = append(kept, decl)
		}
	}
	if len(kept) < len(decls) {
		d.setDecls(kept)
	}
	return previous
}
