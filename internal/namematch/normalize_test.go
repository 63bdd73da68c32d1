package namematch

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Dr. John Smith Jr.", "john smith"},
		{"MR. JOHN  SMITH", "john smith"},
		{"John Smith III", "john smith"},
		{"J.M. Smith", "jm smith"},
		{"", ""},
		{"Mrs.", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"John Smith", "John Smith", 1.0},
		{"John Smith", "Dr. John Smith", 1.0}, // honorific stripped
		{"John Michael Smith", "John Smith", 2.0 / 3.0},
		{"John Smith", "Jane Doe", 0.0},
		{"", "John Smith", 0.0},
	}
	for _, tc := range cases {
		got := Similarity(tc.a, tc.b)
		if diff := got - tc.want; diff > 0.001 || diff < -0.001 {
			t.Errorf("Similarity(%q, %q) = %.3f, want %.3f", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestContained(t *testing.T) {
	if !Contained("John Smith", "John") {
		t.Error("expected 'John' to be contained in 'John Smith'")
	}
	if !Contained("Smith", "John Smith") {
		t.Error("expected containment in either direction")
	}
	if Contained("", "John Smith") {
		t.Error("empty name must not match anything")
	}
	if Contained("Jane Doe", "John Smith") {
		t.Error("unrelated names must not match")
	}
}
