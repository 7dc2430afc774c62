package resumes

import (
	"context"

	"resume-generator/internal/llm"
)

// Service orchestrates prompt construction, generation, and normalization.
type Service struct {
	LLM llm.Client
}

// Generate produces a normalized resume for the request. Upstream failures
// are returned unrecovered; the caller translates them at the HTTP boundary.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (ResumeDocument, error) {
	prompt := BuildPrompt(req.JobRole, req.Skills)

	content, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		return ResumeDocument{}, err
	}

	return Normalize(content, req), nil
}
