package chat

import "testing"

func TestReplyKeywordMatch(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"resume keyword", "How do I improve my resume?", rules[0].reply},
		{"cv keyword", "Please review my CV", rules[0].reply},
		{"interview keyword", "I have an INTERVIEW tomorrow", rules[1].reply},
		{"salary keyword", "How should I negotiate salary?", rules[2].reply},
		{"cover letter keyword", "Do I need a cover letter?", rules[3].reply},
		{"no match", "What's the weather like?", defaultReply},
		{"empty", "", defaultReply},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reply(tc.message); got != tc.want {
				t.Fatalf("Reply(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestReplyDeterministic(t *testing.T) {
	const message = "resume and interview tips please"
	first := Reply(message)
	for i := 0; i < 5; i++ {
		if got := Reply(message); got != first {
			t.Fatalf("Reply is not deterministic: %q vs %q", got, first)
		}
	}
	// Declaration order decides when several rules match.
	if first != rules[0].reply {
		t.Fatalf("expected first matching rule to win, got %q", first)
	}
}
