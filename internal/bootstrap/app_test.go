package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-optimizer/internal/shared/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := Build(config.Config{
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		JWTSecret:       "test-secret",
		LLMModel:        "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return app
}

func bearerFor(t *testing.T, app *App, userID string) string {
	t.Helper()
	pair, err := app.Signer.IssuePair(userID, userID+"@example.com", "")
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	return "Bearer " + pair.AccessToken
}

func uploadResume(t *testing.T, app *App, token, fileName, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func doJSON(app *App, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodGet, "/api/v1/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health returned %d", rec.Code)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/v1/resumes", "/api/v1/jobs", "/api/v1/reports", "/api/v1/me"} {
		rec := doJSON(app, http.MethodGet, path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s without token returned %d", path, rec.Code)
		}
	}
}

func TestUploadValidation(t *testing.T) {
	app := newTestApp(t)
	token := bearerFor(t, app, "google:u1")

	rec := uploadResume(t, app, token, "notes.txt", "text/plain", []byte("hello"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong type should be 400, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = uploadResume(t, app, token, "resume.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid upload should be 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestOwnershipIsolationAcrossUsers(t *testing.T) {
	app := newTestApp(t)
	tokenA := bearerFor(t, app, "google:alice")
	tokenB := bearerFor(t, app, "google:bob")

	rec := uploadResume(t, app, tokenA, "resume.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", rec.Code, rec.Body.String())
	}
	var uploaded struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}

	if rec := doJSON(app, http.MethodGet, "/api/v1/resumes/"+uploaded.ResumeID, tokenB, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("user B reading A's resume should be 404, got %d", rec.Code)
	}
	if rec := doJSON(app, http.MethodDelete, "/api/v1/resumes/"+uploaded.ResumeID, tokenB, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("user B deleting A's resume should be 404, got %d", rec.Code)
	}
	if rec := doJSON(app, http.MethodGet, "/api/v1/resumes/"+uploaded.ResumeID, tokenA, ""); rec.Code != http.StatusOK {
		t.Fatalf("owner read should be 200, got %d", rec.Code)
	}
}

func TestAnalyzeFlowAndCascade(t *testing.T) {
	app := newTestApp(t)
	token := bearerFor(t, app, "google:alice")

	rec := uploadResume(t, app, token, "resume.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", rec.Code, rec.Body.String())
	}
	var uploaded struct {
		ResumeID string `json:"resumeId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}

	rec = doJSON(app, http.MethodPost, "/api/v1/jobs", token, `{"title":"Backend Engineer","description":"Build services"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create job: %d %s", rec.Code, rec.Body.String())
	}
	var job struct {
		JobID string `json:"jobId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
		t.Fatalf("decode job response: %v", err)
	}

	rec = doJSON(app, http.MethodPost, "/api/v1/analyze", token,
		fmt.Sprintf(`{"resumeId":%q,"jobDescriptionId":%q}`, uploaded.ResumeID, job.JobID))
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze: %d %s", rec.Code, rec.Body.String())
	}
	var analyzed struct {
		Success  bool `json:"success"`
		Analysis struct {
			ReportID string `json:"reportId"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &analyzed); err != nil {
		t.Fatalf("decode analyze response: %v", err)
	}
	if !analyzed.Success || analyzed.Analysis.ReportID == "" {
		t.Fatalf("unexpected analyze response: %s", rec.Body.String())
	}

	if rec := doJSON(app, http.MethodGet, "/api/v1/reports/"+analyzed.Analysis.ReportID, token, ""); rec.Code != http.StatusOK {
		t.Fatalf("report fetch: %d", rec.Code)
	}

	// Deleting the resume cascades its reports.
	if rec := doJSON(app, http.MethodDelete, "/api/v1/resumes/"+uploaded.ResumeID, token, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete resume: %d", rec.Code)
	}
	if rec := doJSON(app, http.MethodGet, "/api/v1/reports/"+analyzed.Analysis.ReportID, token, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("report should be gone after resume delete, got %d", rec.Code)
	}
}

func TestAnalyzeWithoutCredentialEnvelope(t *testing.T) {
	app := newTestApp(t)

	rec := doJSON(app, http.MethodPost, "/api/v1/analyze", "", `{"resumeId":"x","jobDescriptionId":"y"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("expected success:false envelope, got %s", rec.Body.String())
	}
}

func TestChatEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := bearerFor(t, app, "google:alice")

	rec := doJSON(app, http.MethodPost, "/api/v1/chat", token, `{"message":"how do I improve my resume?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("chat: %d %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode chat response: %v", err)
	}
	if body.Reply == "" {
		t.Fatal("expected a canned reply")
	}
}

func TestMeFallsBackToClaims(t *testing.T) {
	app := newTestApp(t)
	token := bearerFor(t, app, "google:alice")

	rec := doJSON(app, http.MethodGet, "/api/v1/me", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("me: %d %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "google:alice") {
		t.Fatalf("expected claims fallback with user id, got %s", rec.Body.String())
	}
}
