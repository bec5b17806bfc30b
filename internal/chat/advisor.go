package chat

import "strings"

// rule maps trigger keywords to a canned reply. First match wins, scanning
// in declaration order.
type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"resume", "cv"},
		reply:    "Keep your resume to one or two pages, lead with measurable achievements, and tailor the top third to the role you want.",
	},
	{
		keywords: []string{"interview"},
		reply:    "Research the company, prepare stories in the situation-task-action-result format, and rehearse answers to the most common questions out loud.",
	},
	{
		keywords: []string{"salary", "negotiat", "offer"},
		reply:    "Know your market range before the conversation, let the employer name a number first when you can, and negotiate the full package, not just base pay.",
	},
	{
		keywords: []string{"cover letter"},
		reply:    "Keep the cover letter to three short paragraphs: why this company, why you fit, and a confident close asking for the conversation.",
	},
	{
		keywords: []string{"skill", "learn"},
		reply:    "Pick skills straight from the job descriptions you are targeting, and prove them with small public projects rather than certificates alone.",
	},
	{
		keywords: []string{"linkedin", "network"},
		reply:    "Update your headline to match your target role, post occasionally about your work, and ask for short conversations rather than jobs.",
	},
	{
		keywords: []string{"career change", "switch"},
		reply:    "Map your transferable skills to the new field, close the biggest gap with one focused project, and lean on your existing network for the first opening.",
	},
}

const defaultReply = "I can help with resumes, interviews, salary negotiation, cover letters, skills, and networking. Ask me about any of those."

// Reply returns the canned advice matching the message. Matching is
// case-insensitive substring search over a fixed rules table; no external
// calls and no persistence.
func Reply(message string) string {
	normalized := strings.ToLower(message)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.reply
			}
		}
	}
	return defaultReply
}
