package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubClient struct {
	content string
	err     error

	lastPrompt string
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func setupRouter(client *stubClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(&Service{LLM: client}).RegisterRoutes(router)
	return router
}

func postGenerate(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate_resume", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGenerateResumeSuccess(t *testing.T) {
	client := &stubClient{content: `{
		"name": "Alex Doe",
		"email": "alex@example.com",
		"phone": "555",
		"summary": "engineer",
		"experience": [{"job_title": "Dev", "company": "Acme", "responsibilities": ["Built services"]}],
		"education": [{"degree": "BSc", "institution": "Uni", "graduation_year": 2020}],
		"skills": ["Go", "PostgreSQL"]
	}`}
	router := setupRouter(client)

	resp := postGenerate(t, router, `{"job_role": "Backend Engineer", "skills": ["Go", "PostgreSQL"]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var doc ResumeDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.Name != "Alex Doe" {
		t.Fatalf("expected name Alex Doe, got %q", doc.Name)
	}
	if !reflect.DeepEqual(doc.Skills, []string{"Go", "PostgreSQL"}) {
		t.Fatalf("unexpected skills: %v", doc.Skills)
	}
}

func TestGenerateResumePromptCarriesRequest(t *testing.T) {
	client := &stubClient{content: `{}`}
	router := setupRouter(client)

	resp := postGenerate(t, router, `{"job_role": "Data Analyst", "skills": ["SQL"]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if client.lastPrompt == "" {
		t.Fatalf("expected prompt to be sent to the client")
	}
	if want := "Create a professional resume for the role: Data Analyst."; !bytes.Contains([]byte(client.lastPrompt), []byte(want)) {
		t.Fatalf("expected prompt to contain %q:\n%s", want, client.lastPrompt)
	}
}

func TestGenerateResumeNormalizesMalformedOutput(t *testing.T) {
	client := &stubClient{content: "not json at all"}
	router := setupRouter(client)

	resp := postGenerate(t, router, `{"job_role": "Backend Engineer", "skills": ["Go", "PostgreSQL"]}`)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var doc ResumeDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !reflect.DeepEqual(doc.Skills, []string{"Go", "PostgreSQL"}) {
		t.Fatalf("expected fallback skills, got %v", doc.Skills)
	}
	if len(doc.Experience) != 0 || len(doc.Education) != 0 {
		t.Fatalf("expected empty experience and education, got %+v", doc)
	}
}

func TestGenerateResumeUpstreamFailure(t *testing.T) {
	client := &stubClient{err: errors.New("openai http status 401: invalid api key (invalid_request_error)")}
	router := setupRouter(client)

	resp := postGenerate(t, router, `{"job_role": "Backend Engineer", "skills": ["Go"]}`)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !bytes.Contains([]byte(body.Detail), []byte("invalid api key")) {
		t.Fatalf("expected upstream error in detail, got %q", body.Detail)
	}
}

func TestGenerateResumeRejectsInvalidBody(t *testing.T) {
	client := &stubClient{content: `{}`}
	router := setupRouter(client)

	cases := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"job_role": `},
		{name: "missing job_role", body: `{"skills": ["Go"]}`},
		{name: "blank job_role", body: `{"job_role": "   ", "skills": ["Go"]}`},
		{name: "missing skills", body: `{"job_role": "Dev"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postGenerate(t, router, tc.body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
			var body struct {
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Detail == "" {
				t.Fatalf("expected detail message")
			}
		})
	}
}
