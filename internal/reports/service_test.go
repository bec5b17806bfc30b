package reports

import (
	"context"
	"errors"
	"testing"

	"resume-optimizer/internal/jobs"
	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/resumes"
)

type fakeResumes struct {
	resume resumes.Resume
	err    error
}

func (f fakeResumes) Get(ctx context.Context, userID, resumeID string) (resumes.Resume, error) {
	if f.err != nil {
		return resumes.Resume{}, f.err
	}
	if f.resume.UserID != userID || f.resume.ID != resumeID {
		return resumes.Resume{}, resumes.ErrNotFound
	}
	return f.resume, nil
}

type fakeJobs struct {
	job jobs.JobDescription
	err error
}

func (f fakeJobs) Get(ctx context.Context, userID, jobID string) (jobs.JobDescription, error) {
	if f.err != nil {
		return jobs.JobDescription{}, f.err
	}
	if f.job.UserID != userID || f.job.ID != jobID {
		return jobs.JobDescription{}, jobs.ErrNotFound
	}
	return f.job, nil
}

type stubLLM struct {
	output string
	err    error
}

func (s stubLLM) GenerateAnalysis(ctx context.Context, input llm.AnalyzeInput) (string, error) {
	return s.output, s.err
}

func newTestService(output string, llmErr error) (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	svc := &Service{
		Resumes: fakeResumes{resume: resumes.Resume{ID: "r1", UserID: "u1", Title: "Backend Resume"}},
		Jobs:    fakeJobs{job: jobs.JobDescription{ID: "j1", UserID: "u1", Title: "Backend Engineer"}},
		LLM:     stubLLM{output: output, err: llmErr},
		Repo:    repo,
	}
	return svc, repo
}

const validOutput = `{
  "relevance_score": 82,
  "missing_skills": ["Kubernetes"],
  "strengths": ["Go experience"],
  "weaknesses": ["No cloud certs"],
  "improvement_suggestions": ["Add metrics to achievements"],
  "ai_summary": "Strong match.",
  "interview_questions": ["Describe a production incident you handled."]
}`

func TestAnalyzePersistsAllFields(t *testing.T) {
	svc, repo := newTestService(validOutput, nil)

	report, err := svc.Analyze(context.Background(), "u1", "r1", "j1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.UserID != "u1" {
		t.Fatalf("expected report owned by u1, got %q", report.UserID)
	}
	if report.Analysis.RelevanceScore != 82 {
		t.Fatalf("expected relevance score 82, got %d", report.Analysis.RelevanceScore)
	}
	if len(report.Analysis.MissingSkills) != 1 || report.Analysis.MissingSkills[0] != "Kubernetes" {
		t.Fatalf("unexpected missing skills: %v", report.Analysis.MissingSkills)
	}
	if report.Analysis.AISummary != "Strong match." {
		t.Fatalf("unexpected summary: %q", report.Analysis.AISummary)
	}
	if len(report.Analysis.InterviewQuestions) != 1 {
		t.Fatalf("unexpected interview questions: %v", report.Analysis.InterviewQuestions)
	}

	stored, err := repo.GetByID(context.Background(), "u1", report.ID)
	if err != nil {
		t.Fatalf("GetByID after Analyze: %v", err)
	}
	if stored.Analysis.RelevanceScore != 82 {
		t.Fatalf("persisted score mismatch: %d", stored.Analysis.RelevanceScore)
	}
}

func TestAnalyzeFallbackOnNonJSON(t *testing.T) {
	svc, _ := newTestService("Sorry, I cannot answer that.", nil)

	report, err := svc.Analyze(context.Background(), "u1", "r1", "j1")
	if err != nil {
		t.Fatalf("Analyze should not fail on unparseable output: %v", err)
	}
	want := FallbackAnalysis()
	if report.Analysis.RelevanceScore != want.RelevanceScore {
		t.Fatalf("expected fallback score %d, got %d", want.RelevanceScore, report.Analysis.RelevanceScore)
	}
	if report.Analysis.AISummary != want.AISummary {
		t.Fatalf("expected fallback summary, got %q", report.Analysis.AISummary)
	}
}

func TestAnalyzeStripsMarkdownFence(t *testing.T) {
	svc, _ := newTestService("```json\n"+validOutput+"\n```", nil)

	report, err := svc.Analyze(context.Background(), "u1", "r1", "j1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Analysis.RelevanceScore != 82 {
		t.Fatalf("fenced JSON not parsed, got score %d", report.Analysis.RelevanceScore)
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	svc, repo := newTestService("", errors.New("upstream timeout"))

	if _, err := svc.Analyze(context.Background(), "u1", "r1", "j1"); err == nil {
		t.Fatal("expected error from model failure")
	}
	if items, _ := repo.ListByUser(context.Background(), "u1", 10, 0); len(items) != 0 {
		t.Fatalf("no report should persist on model failure, got %d", len(items))
	}
}

func TestAnalyzeForeignResume(t *testing.T) {
	svc, _ := newTestService(validOutput, nil)

	_, err := svc.Analyze(context.Background(), "u2", "r1", "j1")
	if !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound for foreign resume, got %v", err)
	}
}

func TestAnalyzeMissingJob(t *testing.T) {
	svc, _ := newTestService(validOutput, nil)

	_, err := svc.Analyze(context.Background(), "u1", "r1", "missing")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestParseAnalysisClampsScore(t *testing.T) {
	analysis, ok := parseAnalysis(`{"relevance_score": 140, "ai_summary": "x"}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if analysis.RelevanceScore != 100 {
		t.Fatalf("expected clamp to 100, got %d", analysis.RelevanceScore)
	}
	if analysis.MissingSkills == nil || analysis.Strengths == nil {
		t.Fatal("list fields should default to empty slices")
	}
}
