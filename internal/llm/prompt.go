package llm

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system message sent with every analysis call.
const SystemInstruction = `You are an expert career coach and resume analyst. Compare a resume against a job description and respond with a single JSON object using exactly these keys: relevance_score (integer 0-100), missing_skills (array of strings), strengths (array of strings), weaknesses (array of strings), improvement_suggestions (array of strings), ai_summary (string), interview_questions (array of strings). Return only valid JSON with no markdown or surrounding text.`

const userPromptTemplate = `Analyze how well the following resume matches the job description.

RESUME:
%s

JOB TITLE: %s
COMPANY: %s

JOB DESCRIPTION:
%s

REQUIREMENTS:
%s

Score the relevance from 0 to 100, list skills required by the job but missing from the resume, the resume's strengths and weaknesses for this role, concrete improvement suggestions, a short summary, and likely interview questions.`

// BuildUserPrompt substitutes resume text and job fields into the fixed template.
func BuildUserPrompt(input AnalyzeInput) string {
	return fmt.Sprintf(userPromptTemplate,
		fallbackIfEmpty(input.ResumeText, "(no resume text provided)"),
		fallbackIfEmpty(input.JobTitle, "(untitled)"),
		fallbackIfEmpty(input.Company, "(not specified)"),
		fallbackIfEmpty(input.JobDescription, "(no description provided)"),
		fallbackIfEmpty(input.Requirements, "(not specified)"),
	)
}

func fallbackIfEmpty(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
