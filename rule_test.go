package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRuleTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, `
@import url("base.css");
.a { color: red }
@media screen { }
@supports (display: grid) { }
@keyframes jump { 50% { top: 0 } }
@font-face { font-family: "Foo" }
`)
	expected := []RuleType{ImportRule, StyleRule, MediaRule, SupportsRule, KeyframesRule, FontFaceRule}
	for i, typ := range expected {
		if sheet.CSSRules().Item(i).Type() != typ {
			t.Errorf("expected rule %d to have type %d, is %d", i, typ,
				sheet.CSSRules().Item(i).Type())
		}
	}
	kf := sheet.CSSRules().Item(4).CSSRules().Item(0)
	if kf.Type() != KeyframeRule {
		t.Errorf("expected keyframe type %d, is %d", KeyframeRule, kf.Type())
	}
}

func TestSetCSSTextIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, ".a { color: red }")
	rule := sheet.CSSRules().Item(0)
	rule.SetCSSText(".b { color: blue }")
	if rule.CSSText() != ".a { color: red; }" {
		t.Errorf("expected cssText assignment to do nothing, text is %q", rule.CSSText())
	}
}

func TestSetSelectorText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, ".a { color: red }")
	rule := sheet.CSSRules().Item(0)
	rule.SetSelectorText(".b:hover, .c")
	if rule.SelectorText() != ".b:hover, .c" {
		t.Errorf("expected selector .b:hover, .c, is %s", rule.SelectorText())
	}
	rule.SetSelectorText("%%%") // malformed, must retain prior selectors
	if rule.SelectorText() != ".b:hover, .c" {
		t.Errorf("expected malformed selector to be ignored, is %s", rule.SelectorText())
	}
}

func TestParentRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, "@media screen { .a { color: red } }")
	media := sheet.CSSRules().Item(0)
	inner := media.CSSRules().Item(0)
	if media.ParentRule() != nil {
		t.Error("expected top-level rule to have no parent rule, has one")
	}
	if inner.ParentRule() != media {
		t.Error("expected nested rule's parent to be the media rule, isn't")
	}
	if inner.ParentStyleSheet() != sheet {
		t.Error("expected nested rule to belong to the sheet, doesn't")
	}
	if sheet.CSSRules().Item(0).CSSRules() != media.CSSRules() {
		t.Error("expected nested rule list to be cached, isn't")
	}
}

func TestConditionText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, "@media screen, print { } @supports (display: grid) { }")
	media := sheet.CSSRules().Item(0)
	if media.ConditionText() != "screen, print" {
		t.Errorf("expected condition 'screen, print', is %s", media.ConditionText())
	}
	media.SetConditionText("tv")
	if media.ConditionText() != "tv" {
		t.Errorf("expected condition tv, is %s", media.ConditionText())
	}
	media.SetConditionText("foo bar baz") // not a media query, must be ignored
	if media.ConditionText() != "tv" {
		t.Errorf("expected malformed condition to be ignored, is %s", media.ConditionText())
	}
	//
	sup := sheet.CSSRules().Item(1)
	if sup.ConditionText() != "(display: grid)" {
		t.Errorf("expected condition '(display: grid)', is %s", sup.ConditionText())
	}
	sup.SetConditionText("(display: flex)") // not settable on @supports
	if sup.ConditionText() != "(display: grid)" {
		t.Errorf("expected supports condition to be read-only, is %s", sup.ConditionText())
	}
}

func TestForeignKindAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, ".a { color: red } @media screen { }")
	style := sheet.CSSRules().Item(0)
	media := sheet.CSSRules().Item(1)
	if style.CSSRules() != nil {
		t.Error("expected style rule to have no nested rule list, has one")
	}
	if style.Media() != nil {
		t.Error("expected style rule to have no media list, has one")
	}
	if media.Style() != nil {
		t.Error("expected media rule to have no style declaration, has one")
	}
	if media.SelectorText() != "" {
		t.Errorf("expected media rule selector to be empty, is %s", media.SelectorText())
	}
	if style.Name() != "" {
		t.Errorf("expected style rule name to be empty, is %s", style.Name())
	}
}

func TestNestedInsertAndDelete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, "@media screen { .a { color: red } }")
	nested := sheet.CSSRules().Item(0).CSSRules()
	if _, err := nested.InsertRule(".b { color: blue }", 1); err != nil {
		t.Fatalf("cannot insert nested rule: %v", err)
	}
	if nested.Length() != 2 {
		t.Errorf("expected 2 nested rules, have %d", nested.Length())
	}
	if nested.Item(1).SelectorText() != ".b" {
		t.Errorf("expected nested .b at index 1, is %s", nested.Item(1).SelectorText())
	}
	if err := nested.DeleteRule(0); err != nil {
		t.Fatalf("cannot delete nested rule: %v", err)
	}
	if nested.Item(0).SelectorText() != ".b" {
		t.Errorf("expected .b to shift to index 0, is %s", nested.Item(0).SelectorText())
	}
}

func TestCascadingDisconnect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, "@media screen { .a { color: red } .b { color: blue } }")
	media := sheet.CSSRules().Item(0)
	nested := media.CSSRules()
	inner := nested.Item(0) // materialize only the first child
	if err := sheet.DeleteRule(0); err != nil {
		t.Fatalf("cannot delete media rule: %v", err)
	}
	if media.ParentStyleSheet() != nil {
		t.Error("expected deleted media rule to be disconnected, isn't")
	}
	if inner.ParentRule() != nil || inner.ParentStyleSheet() != nil {
		t.Error("expected nested handle to be disconnected with its parent, isn't")
	}
	if inner.CSSText() != ".a { color: red; }" {
		t.Errorf("expected nested handle to keep its last text, is %q", inner.CSSText())
	}
	expected := "@media screen {\n  .a { color: red; }\n  .b { color: blue; }\n}"
	if media.CSSText() != expected {
		t.Errorf("expected media snapshot %q, is %q", expected, media.CSSText())
	}
}

func TestDetachedRuleList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, "@media screen { .a { color: red } .b { color: blue } }")
	media := sheet.CSSRules().Item(0)
	nested := media.CSSRules()
	inner := nested.Item(0)
	if err := sheet.DeleteRule(0); err != nil {
		t.Fatalf("cannot delete media rule: %v", err)
	}
	// The nested list stays readable against the snapshot.
	if nested.Length() != 2 {
		t.Errorf("expected detached list to keep 2 rules, has %d", nested.Length())
	}
	if nested.Item(0) != inner {
		t.Error("expected detached list to keep handle identity, didn't")
	}
	late := nested.Item(1) // materialized only after the disconnect
	if late == nil || late.ParentStyleSheet() != nil {
		t.Error("expected late handle to be born disconnected, isn't")
	}
	if late.CSSText() != ".b { color: blue; }" {
		t.Errorf("expected late handle to read the snapshot, is %q", late.CSSText())
	}
	// Structural mutation is rejected.
	if _, err := nested.InsertRule(".c { }", 0); !errors.Is(err, ErrDetached) {
		t.Errorf("expected ErrDetached on insert, is %v", err)
	}
	if err := nested.DeleteRule(0); !errors.Is(err, ErrDetached) {
		t.Errorf("expected ErrDetached on delete, is %v", err)
	}
}
