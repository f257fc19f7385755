package oracle

import (
	"strings"
	"testing"
	"time"
)

func TestAssertPrettyClose(t *testing.T) {
	o := New(nil)

	long := strings.Repeat("abcdefghijklmnopqrstuvwxyz0123456789 ", 60)[:2000]
	longChanged := long[:1000] + "#" + long[1001:]

	tests := []struct {
		name   string
		s1     string
		s2     string
		accept bool
	}{
		{"both empty", "", "", true},
		{"empty against short", "", "short-but-under-25-chars", true},
		{"empty against long", "", "a string well over twenty five characters long", false},
		{"blank against short", "   \n\t", "tiny", true},
		{"long texts with one change", long, longChanged, true},
		{"short texts sharing nothing", "abcdefghij", "0123456789", false},
		{"escaped title", "&#1087;&#1088;&#1080;", "при", true},
		{"escaped on both sides", "&#1087;&#1088;", "&#1087;", true},
		{"identical", "Breaking News", "Breaking News", true},
		{"whitespace noise", "Hello   world", "Hello world", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.AssertPrettyClose(tt.s1, tt.s2)
			if tt.accept && err != nil {
				t.Errorf("Expected accept, got: %v", err)
			}
			if !tt.accept && err == nil {
				t.Error("Expected reject, got accept")
			}
		})
	}
}

func TestAssertPrettyClose_FailureDiagnostics(t *testing.T) {
	o := New(nil)

	err := o.AssertPrettyClose("abcdefghij", "0123456789")
	failure, ok := AsFailure(err)
	if !ok {
		t.Fatalf("Expected *EquivalenceFailure, got %T", err)
	}

	if failure.Kind != KindText {
		t.Errorf("Expected kind %q, got %q", KindText, failure.Kind)
	}
	if failure.Rule != "shared-block" {
		t.Errorf("Expected rule 'shared-block', got %q", failure.Rule)
	}
	if failure.Left != "abcdefghij" || failure.Right != "0123456789" {
		t.Errorf("Expected both values to be reported, got %q and %q", failure.Left, failure.Right)
	}
	if failure.Threshold != ShortTextRatio {
		t.Errorf("Expected threshold %f, got %f", ShortTextRatio, failure.Threshold)
	}
	if failure.Ratio != 0 || failure.Longest != 0 {
		t.Errorf("Expected ratio 0 and longest 0, got %f and %d", failure.Ratio, failure.Longest)
	}
	if !strings.Contains(err.Error(), "not similar enough") {
		t.Errorf("Unexpected error message: %s", err.Error())
	}
}

func TestTextRules_Individually(t *testing.T) {
	ruleByName := func(name string) Rule[TextCase] {
		for _, rule := range textRules {
			if rule.Name == name {
				return rule
			}
		}
		t.Fatalf("rule %q not found", name)
		return Rule[TextCase]{}
	}

	tests := []struct {
		rule     string
		left     string
		right    string
		expected Verdict
	}{
		{"escaped-short-text", "&#8217;", "'", Accept},
		{"escaped-short-text", "&#8217;" + strings.Repeat("x", 60), "'", Continue},
		{"escaped-short-text", "&#8217;", "&#8217;", Continue},
		{"effectively-empty", " ", "short", Accept},
		{"effectively-empty", "x", "short", Continue},
		{"ratio", "abcd", "abce", Accept},
		{"ratio", "aaaa", "bbbb", Continue},
		// 3 of 20 left runes in the longest block: ratio is low but the
		// block covers more than 10% of the left text.
		{"longest-block-fraction", "xyz" + strings.Repeat("q", 17), "xyz" + strings.Repeat("w", 200), Accept},
		{"longest-block-fraction", "", "abc", Continue},
		{"shared-block", strings.Repeat("m", 50), strings.Repeat("m", 50), Accept},
		{"shared-block", strings.Repeat("m", 49), strings.Repeat("m", 49), Reject},
	}

	for _, tt := range tests {
		rule := ruleByName(tt.rule)
		c := newTextCase(tt.left, tt.right, DefaultThresholds)
		if got := rule.Apply(c); got != tt.expected {
			t.Errorf("%s(%q, %q): expected %s, got %s", tt.rule, tt.left, tt.right, tt.expected, got)
		}
	}
}

func TestAssertPrettyClose_LongSharedBlock(t *testing.T) {
	o := New(nil)

	shared := strings.Repeat("s", 60)
	left := shared + strings.Repeat("a", 2000)
	right := shared + strings.Repeat("b", 2000)

	// ratio and block fraction are both low; the 60 rune block carries it.
	if err := o.AssertPrettyClose(left, right); err != nil {
		t.Errorf("Expected accept on long shared block, got: %v", err)
	}
}

func TestThresholds_RatioFor(t *testing.T) {
	if got := DefaultThresholds.RatioFor(2000, 2000); got != LongTextRatio {
		t.Errorf("Expected %f for long texts, got %f", LongTextRatio, got)
	}
	if got := DefaultThresholds.RatioFor(2000, 1024); got != ShortTextRatio {
		t.Errorf("Expected %f when one text is not long, got %f", ShortTextRatio, got)
	}
	if got := DefaultThresholds.RatioFor(10, 10); got != ShortTextRatio {
		t.Errorf("Expected %f for short texts, got %f", ShortTextRatio, got)
	}
}

func TestAssertSameEmail(t *testing.T) {
	o := New(nil)

	tests := []struct {
		name   string
		e1     string
		e2     string
		accept bool
	}{
		{"identical", "jane@x.com", "jane@x.com", true},
		{"no address on either side", "no-at-symbol-1", "also-no-at-symbol", true},
		{"contained", "jane@x.com", "Jane <jane@x.com>", true},
		{"munged right", "Jane (jane@x.com)", "jane@x.com (Jane)", true},
		{"munged left", "Jane <jane@x.com>", "Jane (jane@x.com)", true},
		{"munged both", "Jane <jane@x.com>", "jane@x.com (Jane)", true},
		{"different addresses", "jane@x.com", "john@y.org", false},
		{"address against name", "jane@x.com", "Jane", false},
		{"reference longer than candidate", "Jane <jane@x.com>", "jane@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.AssertSameEmail(tt.e1, tt.e2)
			if tt.accept && err != nil {
				t.Errorf("Expected accept, got: %v", err)
			}
			if !tt.accept && err == nil {
				t.Error("Expected reject, got accept")
			}
		})
	}
}

func TestAssertSameEmail_CustomMunger(t *testing.T) {
	calls := 0
	o := New(func(s string) string {
		calls++
		return strings.ToLower(s)
	})

	if err := o.AssertSameEmail("JANE@X.COM", "jane@x.com"); err != nil {
		t.Errorf("Expected custom munger to reconcile case, got: %v", err)
	}
	if calls == 0 {
		t.Error("Expected custom munger to be called")
	}
}

func TestAssertSameLinks(t *testing.T) {
	o := New(nil)

	tests := []struct {
		name   string
		l1     string
		l2     string
		accept bool
	}{
		{"case and hash", "http://EX.com/a#", "http://ex.com/a", true},
		{"surrounding whitespace", "  http://ex.com/a ", "http://ex.com/a", true},
		{"contained", "http://ex.com/a", "http://ex.com/a?utm=1", true},
		{"google buzz", "http://ex.com/a", "http://www.google.com/buzz/123", true},
		{"google plus", "http://ex.com/a", "https://plus.google.com/1234", true},
		{"script link close", "javascript:void(0)&gt", "javascript:void(0)&gt;", true},
		{"script link different", "bdefghklmno", "javascript:0123456789", false},
		{"different hosts", "http://a.com", "http://b.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.AssertSameLinks(tt.l1, tt.l2)
			if tt.accept && err != nil {
				t.Errorf("Expected accept, got: %v", err)
			}
			if !tt.accept && err == nil {
				t.Error("Expected reject, got accept")
			}
		})
	}
}

func TestAssertSameLinks_FailureReportsNormalizedValues(t *testing.T) {
	o := New(nil)

	failure, ok := AsFailure(o.AssertSameLinks("HTTP://A.com#", "http://b.com"))
	if !ok {
		t.Fatal("Expected *EquivalenceFailure")
	}
	if failure.Kind != KindLink {
		t.Errorf("Expected kind %q, got %q", KindLink, failure.Kind)
	}
	if failure.Left != "http://a.com" {
		t.Errorf("Expected normalized left value, got %q", failure.Left)
	}
	if failure.Rule != "different" {
		t.Errorf("Expected rule 'different', got %q", failure.Rule)
	}
}

func TestAssertSameLinks_ScriptFailureCarriesTextDiagnostics(t *testing.T) {
	o := New(nil)

	failure, ok := AsFailure(o.AssertSameLinks("bdefghklmno", "javascript:0123456789"))
	if !ok {
		t.Fatal("Expected *EquivalenceFailure")
	}
	if failure.Rule != "script-link" {
		t.Errorf("Expected rule 'script-link', got %q", failure.Rule)
	}
	if failure.Threshold != ShortTextRatio {
		t.Errorf("Expected text threshold to be carried over, got %f", failure.Threshold)
	}
}

func TestAssertSameTime(t *testing.T) {
	o := New(nil)

	utc := time.Date(2023, 7, 3, 12, 0, 0, 0, time.UTC)
	offset := utc.In(time.FixedZone("CEST", 2*60*60))
	otherOffset := utc.In(time.FixedZone("EDT", -4*60*60))
	minuteLater := utc.Add(time.Minute)
	shiftedWallClock := time.Date(2023, 7, 3, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name   string
		t1     *time.Time
		t2     *time.Time
		accept bool
	}{
		{"both absent", nil, nil, true},
		{"left absent", nil, &utc, false},
		{"right absent", &utc, nil, false},
		{"identical", &utc, &utc, true},
		{"utc against offset", &utc, &offset, true},
		{"offset against utc", &offset, &utc, true},
		{"sixty seconds apart", &utc, &minuteLater, false},
		{"same wall clock in another zone", &utc, &shiftedWallClock, false},
		{"same instant in two non-utc zones", &offset, &otherOffset, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := o.AssertSameTime(tt.t1, tt.t2)
			if tt.accept && err != nil {
				t.Errorf("Expected accept, got: %v", err)
			}
			if !tt.accept && err == nil {
				t.Error("Expected reject, got accept")
			}
		})
	}
}

func TestAssertSameTime_FailureFormatsAbsentValues(t *testing.T) {
	o := New(nil)
	utc := time.Date(2023, 7, 3, 12, 0, 0, 0, time.UTC)

	failure, ok := AsFailure(o.AssertSameTime(&utc, nil))
	if !ok {
		t.Fatal("Expected *EquivalenceFailure")
	}
	if failure.Left != "2023-07-03T12:00:00Z" {
		t.Errorf("Expected RFC3339 left value, got %q", failure.Left)
	}
	if failure.Right != absentTime {
		t.Errorf("Expected %q, got %q", absentTime, failure.Right)
	}
	if failure.Rule != "one-absent" {
		t.Errorf("Expected rule 'one-absent', got %q", failure.Rule)
	}
}

func TestEvaluate_EmptyRulesReject(t *testing.T) {
	rule, verdict := evaluate([]Rule[TextCase]{}, &TextCase{})
	if verdict != Reject || rule != "" {
		t.Errorf("Expected anonymous reject, got %q %s", rule, verdict)
	}
}
