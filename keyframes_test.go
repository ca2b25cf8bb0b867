package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const jumpSheet = `
@keyframes jump {
    from { top: 0 }
    50%  { top: 5px }
    50%  { top: 6px }
    to   { top: 10px }
}
`

func TestKeyframesName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	kfs := sheet.CSSRules().Item(0)
	if kfs.Name() != "jump" {
		t.Errorf("expected name jump, is %s", kfs.Name())
	}
	kfs.SetName("hop")
	if kfs.Name() != "hop" {
		t.Errorf("expected name hop, is %s", kfs.Name())
	}
}

func TestKeyframesList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	frames := sheet.CSSRules().Item(0).CSSRules()
	if frames.Length() != 4 {
		t.Fatalf("expected 4 keyframes, have %d", frames.Length())
	}
	if frames.Item(0).KeyText() != "0%" {
		t.Errorf("expected from to normalize to 0%%, is %s", frames.Item(0).KeyText())
	}
	if frames.Item(3).KeyText() != "100%" {
		t.Errorf("expected to to normalize to 100%%, is %s", frames.Item(3).KeyText())
	}
	if frames.Item(1) != frames.Item(1) {
		t.Error("expected keyframe handle identity to be stable, isn't")
	}
}

func TestFindRuleLastMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	kfs := sheet.CSSRules().Item(0)
	found := kfs.FindRule("50%")
	if found == nil {
		t.Fatal("expected to find the 50% keyframe, didn't")
	}
	if found.Style().GetPropertyValue("top") != "6px" {
		t.Errorf("expected the later 50%% keyframe to win, top is %s",
			found.Style().GetPropertyValue("top"))
	}
	if found != kfs.CSSRules().Item(2) {
		t.Error("expected FindRule to return the cached handle, didn't")
	}
	if kfs.FindRule("from") == nil {
		t.Error("expected 'from' to find the 0% keyframe, didn't")
	}
	if kfs.FindRule("25%") != nil {
		t.Error("expected no match for 25%, found one")
	}
	if kfs.FindRule("middle") != nil {
		t.Error("expected unparseable key text to find nothing, found something")
	}
}

func TestAppendAndDeleteKeyframe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	kfs := sheet.CSSRules().Item(0)
	kfs.AppendRule("75% { top: 8px }")
	if kfs.CSSRules().Length() != 5 {
		t.Fatalf("expected 5 keyframes after append, have %d", kfs.CSSRules().Length())
	}
	if kfs.CSSRules().Item(4).KeyText() != "75%" {
		t.Errorf("expected appended keyframe at the end, is %s", kfs.CSSRules().Item(4).KeyText())
	}
	kfs.AppendRule(".a { top: 0 }") // not a keyframe, must be ignored
	if kfs.CSSRules().Length() != 5 {
		t.Errorf("expected malformed append to be ignored, have %d keyframes",
			kfs.CSSRules().Length())
	}
	//
	doomed := kfs.CSSRules().Item(2) // the later 50% frame
	kfs.DeleteRule("50%")
	if kfs.CSSRules().Length() != 4 {
		t.Fatalf("expected 4 keyframes after delete, have %d", kfs.CSSRules().Length())
	}
	if doomed.ParentRule() != nil {
		t.Error("expected deleted keyframe's handle to be disconnected, isn't")
	}
	if doomed.CSSText() != "50% { top: 6px; }" {
		t.Errorf("expected disconnected keyframe to keep its text, is %q", doomed.CSSText())
	}
	if kfs.FindRule("50%").Style().GetPropertyValue("top") != "5px" {
		t.Errorf("expected the earlier 50%% keyframe to remain, top is %s",
			kfs.FindRule("50%").Style().GetPropertyValue("top"))
	}
	kfs.DeleteRule("25%") // no match, must do nothing
	if kfs.CSSRules().Length() != 4 {
		t.Errorf("expected unmatched delete to do nothing, have %d keyframes",
			kfs.CSSRules().Length())
	}
}

func TestSetKeyText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	frame := sheet.CSSRules().Item(0).CSSRules().Item(1)
	frame.SetKeyText("25%, 75%")
	if frame.KeyText() != "25%, 75%" {
		t.Errorf("expected key text '25%%, 75%%', is %s", frame.KeyText())
	}
	frame.SetKeyText("150%") // out of range, must retain prior keys
	if frame.KeyText() != "25%, 75%" {
		t.Errorf("expected malformed key text to be ignored, is %s", frame.KeyText())
	}
}

func TestKeyframeStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssom.sheet")
	defer teardown()
	//
	sheet := mustParse(t, jumpSheet)
	style := sheet.CSSRules().Item(0).CSSRules().Item(0).Style()
	if style == nil {
		t.Fatal("expected keyframe to have a style declaration, hasn't")
	}
	if style.GetPropertyValue("top") != "0" {
		t.Errorf("expected top 0, is %s", style.GetPropertyValue("top"))
	}
	style.SetProperty("left", "1px", "")
	if style.Length() != 2 {
		t.Errorf("expected 2 declarations, have %d", style.Length())
	}
}
