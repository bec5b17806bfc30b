package reports

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/jobs"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/resumes"
	"resume-optimizer/internal/shared/metrics"
	"resume-optimizer/internal/shared/telemetry"
)

// ResumeSource provides ownership-scoped resume lookups.
type ResumeSource interface {
	Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error)
}

// JobSource provides ownership-scoped job description lookups.
type JobSource interface {
	Get(ctx context.Context, userID, jobID string) (jobs.JobDescription, error)
}

// Service orchestrates one analysis: load both referenced rows under the
// caller's identity, call the model, parse or fall back, persist.
type Service struct {
	Resumes ResumeSource
	Jobs    JobSource
	LLM     llm.Client
	Repo    Repo
}

// Analyze produces and persists an analysis report for the caller's resume
// and job description pair.
func (s *Service) Analyze(ctx context.Context, userID, resumeID, jobID string) (AnalysisReport, error) {
	if strings.TrimSpace(userID) == "" {
		return AnalysisReport{}, ErrInvalidInput
	}
	if strings.TrimSpace(resumeID) == "" || strings.TrimSpace(jobID) == "" {
		return AnalysisReport{}, ErrInvalidInput
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		metrics.IncAnalysisFailed()
		if isNotFound(err) {
			return AnalysisReport{}, ErrResumeNotFound
		}
		return AnalysisReport{}, err
	}
	job, err := s.Jobs.Get(ctx, userID, jobID)
	if err != nil {
		metrics.IncAnalysisFailed()
		if isNotFound(err) {
			return AnalysisReport{}, ErrJobNotFound
		}
		return AnalysisReport{}, err
	}

	input := llm.AnalyzeInput{
		JobTitle:       job.Title,
		Company:        job.Company,
		JobDescription: job.Description,
		Requirements:   job.Requirements,
	}
	if resume.ExtractedText != nil {
		input.ResumeText = *resume.ExtractedText
	}

	raw, err := s.LLM.GenerateAnalysis(ctx, input)
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisReport{}, err
	}

	analysis, ok := parseAnalysis(raw)
	if !ok {
		metrics.IncAnalysisFallback()
		telemetry.Warn("reports.analysis_parse_failed", telemetry.Fields{
			"user_id":   userID,
			"resume_id": resumeID,
			"job_id":    jobID,
		})
		analysis = FallbackAnalysis()
	}

	report := AnalysisReport{
		ID:               uuid.NewString(),
		UserID:           userID,
		ResumeID:         resumeID,
		JobDescriptionID: jobID,
		Analysis:         analysis,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisReport{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	return report, nil
}

// Get returns a report owned by the user.
func (s *Service) Get(ctx context.Context, userID, reportID string) (AnalysisReport, error) {
	if userID == "" || reportID == "" {
		return AnalysisReport{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, reportID)
}

// List returns the user's reports ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]AnalysisReport, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a report owned by the user.
func (s *Service) Delete(ctx context.Context, userID, reportID string) error {
	if userID == "" || reportID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, reportID)
}

func isNotFound(err error) bool {
	return errors.Is(err, resumes.ErrNotFound) || errors.Is(err, jobs.ErrNotFound)
}

// parseAnalysis decodes the model output. Models habitually wrap JSON in
// markdown fences, so those are stripped before decoding.
func parseAnalysis(raw string) (Analysis, bool) {
	cleaned := stripCodeFence(strings.TrimSpace(raw))

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return Analysis{}, false
	}
	if analysis.RelevanceScore < 0 {
		analysis.RelevanceScore = 0
	}
	if analysis.RelevanceScore > 100 {
		analysis.RelevanceScore = 100
	}
	if analysis.MissingSkills == nil {
		analysis.MissingSkills = []string{}
	}
	if analysis.Strengths == nil {
		analysis.Strengths = []string{}
	}
	if analysis.Weaknesses == nil {
		analysis.Weaknesses = []string{}
	}
	if analysis.ImprovementSuggestions == nil {
		analysis.ImprovementSuggestions = []string{}
	}
	if analysis.InterviewQuestions == nil {
		analysis.InterviewQuestions = []string{}
	}
	return analysis, true
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
