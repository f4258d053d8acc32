package service

import "testing"

func TestParsePrice_FallsBackToZero(t *testing.T) {
	for _, s := range []string{"", "bad", "12,5", "NaN", "Inf"} {
		if got := parsePrice(s); got != 0 {
			t.Errorf("parsePrice(%q) = %v, want 0", s, got)
		}
	}
	if got := parsePrice("10.5"); got != 10.5 {
		t.Errorf("parsePrice(\"10.5\") = %v, want 10.5", got)
	}
	if got := parsePrice("-3"); got != -3 {
		t.Errorf("parsePrice(\"-3\") = %v, want -3", got)
	}
}

func TestParseNullablePrice_FallsBackToNil(t *testing.T) {
	for _, s := range []string{"", "bad", "NaN"} {
		if got := parseNullablePrice(s); got != nil {
			t.Errorf("parseNullablePrice(%q) = %v, want nil", s, *got)
		}
	}
	got := parseNullablePrice("2500")
	if got == nil || *got != 2500 {
		t.Errorf("parseNullablePrice(\"2500\") = %v, want 2500", got)
	}
}

func TestParseQty_FallsBackToZero(t *testing.T) {
	for _, s := range []string{"", "three", "1.5"} {
		if got := parseQty(s); got != 0 {
			t.Errorf("parseQty(%q) = %d, want 0", s, got)
		}
	}
	if got := parseQty("3"); got != 3 {
		t.Errorf("parseQty(\"3\") = %d, want 3", got)
	}
}
