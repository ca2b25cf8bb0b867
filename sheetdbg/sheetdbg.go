/*
Package sheetdbg implements helpers to debug a stylesheet's rule tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sheetdbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/cssom"
	tp "github.com/xlab/treeprint"
)

// TreePrint renders the rule tree of a stylesheet in treeprint format,
// one line per rule, grouping rules as branches.
func TreePrint(sheet *cssom.StyleSheet) string {
	tree := tp.New()
	addRules(tree, sheet.CSSRules())
	return tree.String()
}

// Dump writes the treeprint rendering of a stylesheet to w.
func Dump(w io.Writer, sheet *cssom.StyleSheet) {
	fmt.Fprint(w, TreePrint(sheet))
}

func addRules(branch tp.Tree, rules *cssom.RuleList) {
	for i := 0; i < rules.Length(); i++ {
		rule := rules.Item(i)
		switch rule.Type() {
		case cssom.MediaRule:
			sub := branch.AddBranch("@media " + rule.ConditionText())
			addRules(sub, rule.CSSRules())
		case cssom.SupportsRule:
			sub := branch.AddBranch("@supports " + rule.ConditionText())
			addRules(sub, rule.CSSRules())
		case cssom.KeyframesRule:
			sub := branch.AddBranch("@keyframes " + rule.Name())
			addRules(sub, rule.CSSRules())
		case cssom.StyleRule:
			branch.AddNode(rule.SelectorText() + " { " + rule.Style().CSSText() + " }")
		case cssom.KeyframeRule:
			branch.AddNode(rule.CSSText())
		default:
			branch.AddNode(rule.CSSText())
		}
	}
}
