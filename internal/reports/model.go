package reports

import "time"

// Analysis is the model-produced document: the seven fields the chat
// completion is instructed to return.
type Analysis struct {
	RelevanceScore         int      `json:"relevance_score"`
	MissingSkills          []string `json:"missing_skills"`
	Strengths              []string `json:"strengths"`
	Weaknesses             []string `json:"weaknesses"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	AISummary              string   `json:"ai_summary"`
	InterviewQuestions     []string `json:"interview_questions"`
}

// AnalysisReport is a persisted analysis tied to a resume and a job
// description, owned by a user.
type AnalysisReport struct {
	ID               string
	UserID           string
	ResumeID         string
	JobDescriptionID string
	Analysis         Analysis
	CreatedAt        time.Time
}
