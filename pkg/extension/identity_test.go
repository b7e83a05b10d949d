package extension

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"TestExt", "testext"},
		{"My Extension!", "my_extension_"},
		{"John Doe", "john_doe"},
		{"Test123", "test123"},
		{"already_normalized.token", "already_normalized.token"},
		{"UPPER CASE", "upper_case"},
		{"symbols&^%$", "symbols____"},
		{"!!!", "___"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"John Doe", "My Extension!", "TestExt", "a.b.c", "x y-z"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestDerivedIdentifier(t *testing.T) {
	cases := []struct {
		author string
		name   string
		want   string
	}{
		{"John Doe", "My Extension!", "john_doe.my_extension_"},
		{"TestAuthor", "TestExt", "testauthor.testext"},
		{"Author", "Test123", "author.test123"},
		{"same", "same", "same.same"},
	}

	for _, tc := range cases {
		b := NewBaseExtension(nil, tc.name, tc.author)
		if got := b.ID(); got != tc.want {
			t.Errorf("ID for (%q, %q) = %q, want %q", tc.author, tc.name, got, tc.want)
		}
	}
}

func TestIdentifierDegenerateNames(t *testing.T) {
	// All-punctuation names are accepted, not rejected; every character
	// collapses to an underscore.
	b := NewBaseExtension(nil, "!!!", "日本")
	if got := b.ID(); got != "__.___" {
		t.Errorf("ID = %q, want %q", got, "__.___")
	}
}
