package llm

import "context"

// Client abstracts chat-completion providers for resume analysis.
type Client interface {
	GenerateAnalysis(ctx context.Context, input AnalyzeInput) (string, error)
}

// AnalyzeInput captures the inputs needed to build the analysis prompt.
type AnalyzeInput struct {
	ResumeText     string
	JobTitle       string
	Company        string
	JobDescription string
	Requirements   string
}

// PlaceholderClient backs dev mode without an API key. It returns a fixed,
// valid analysis document so the endpoint works end to end locally.
type PlaceholderClient struct{}

// GenerateAnalysis returns a canned analysis payload.
func (PlaceholderClient) GenerateAnalysis(ctx context.Context, input AnalyzeInput) (string, error) {
	_ = input
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return `{
  "relevance_score": 70,
  "missing_skills": ["Docker", "Kubernetes"],
  "strengths": ["Relevant professional experience", "Clear project outcomes"],
  "weaknesses": ["Few quantified achievements"],
  "improvement_suggestions": ["Quantify impact with metrics", "Mirror keywords from the job description"],
  "ai_summary": "Solid overall fit with room to tailor the resume to this role.",
  "interview_questions": ["Walk me through your most relevant project.", "How do you prioritize competing deadlines?"]
}`, nil
}

var _ Client = PlaceholderClient{}
