package ruletree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/css"
)

// Canonical CSS text for nodes and trees. Output normalizes whitespace:
// declarations on a single line inside the block, nested rules indented by
// two spaces per embed level (matching douceur's indent convention).

const indentStep = "  "

// String returns the canonical CSS text of the whole tree, one top-level
// rule per line group.
func (t *RuleTree) String() string {
	texts := make([]string, len(t.Rules))
	for i, r := range t.Rules {
		texts[i] = r.String()
	}
	return strings.Join(texts, "\n")
}

// String returns the canonical CSS text of a rule node.
func (n *RuleNode) String() string {
	var b strings.Builder
	n.writeText(&b, 0)
	return b.String()
}

// String returns the canonical CSS text of a keyframe node,
// e.g. "50% { top: 0; }".
func (kf *KeyframeNode) String() string {
	var b strings.Builder
	kf.writeText(&b, 0)
	return b.String()
}

func (n *RuleNode) writeText(b *strings.Builder, level int) {
	ind := strings.Repeat(indentStep, level)
	b.WriteString(ind)
	switch n.Kind {
	case StyleKind:
		b.WriteString(strings.Join(n.Selectors, ", "))
		writeDeclarationBlock(b, n.Declarations)
	case MediaKind:
		b.WriteString("@media " + strings.Join(n.Queries, ", "))
		n.writeChildBlock(b, level)
	case SupportsKind:
		b.WriteString("@supports " + n.Condition)
		n.writeChildBlock(b, level)
	case KeyframesKind:
		b.WriteString("@keyframes " + n.Name)
		if len(n.Keyframes) == 0 {
			b.WriteString(" { }")
			return
		}
		b.WriteString(" {\n")
		for _, kf := range n.Keyframes {
			kf.writeText(b, level+1)
			b.WriteString("\n")
		}
		b.WriteString(ind + "}")
	default:
		b.WriteString(n.Name)
		if n.Prelude != "" {
			b.WriteString(" " + n.Prelude)
		}
		if n.Declarations == nil && n.Children == nil {
			b.WriteString(";") // statement at-rule, e.g. @import
			return
		}
		if n.Children != nil {
			n.writeChildBlock(b, level)
			return
		}
		writeDeclarationBlock(b, n.Declarations)
	}
}

func (n *RuleNode) writeChildBlock(b *strings.Builder, level int) {
	if len(n.Children) == 0 {
		b.WriteString(" { }")
		return
	}
	b.WriteString(" {\n")
	for _, ch := range n.Children {
		ch.writeText(b, level+1)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(indentStep, level) + "}")
}

func (kf *KeyframeNode) writeText(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat(indentStep, level))
	b.WriteString(KeyTextOf(kf.Selectors))
	writeDeclarationBlock(b, kf.Declarations)
}

// KeyTextOf joins keyframe selectors into their canonical key text,
// e.g. "0%, 50%".
func KeyTextOf(selectors []KeyframeSelector) string {
	keys := make([]string, len(selectors))
	for i, s := range selectors {
		keys[i] = s.String()
	}
	return strings.Join(keys, ", ")
}

// DeclarationsText returns the canonical text of a declaration block
// without the surrounding braces, e.g. "color: red; top: 0;".
func DeclarationsText(decls []*css.Declaration) string {
	texts := make([]string, len(decls))
	for i, d := range decls {
		texts[i] = d.String()
	}
	return strings.Join(texts, " ")
}

func writeDeclarationBlock(b *strings.Builder, decls []*css.Declaration) {
	if len(decls) == 0 {
		b.WriteString(" { }")
		return
	}
	b.WriteString(" { ")
	b.WriteString(DeclarationsText(decls))
	b.WriteString(" }")
}
