package s3

import "testing"

func TestNormalizePrefix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"resumes/", "resumes"},
		{" /resumes/ ", "resumes"},
	}
	for _, tc := range cases {
		if got := normalizePrefix(tc.in); got != tc.want {
			t.Errorf("normalizePrefix(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPrefix(t *testing.T) {
	if got := applyPrefix("", "u/1.pdf"); got != "u/1.pdf" {
		t.Errorf("applyPrefix empty = %q", got)
	}
	if got := applyPrefix("resumes", "u/1.pdf"); got != "resumes/u/1.pdf" {
		t.Errorf("applyPrefix = %q", got)
	}
}
