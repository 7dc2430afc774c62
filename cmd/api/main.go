package main

import (
	"fmt"
	"log"

	"resume-generator/internal/llm"
	openai "resume-generator/internal/llm/openai"
	"resume-generator/internal/resumes"
	"resume-generator/internal/shared/config"
	"resume-generator/internal/shared/server"
)

func main() {
	cfg := config.Load()

	client, err := buildLLMClient(cfg)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	svc := &resumes.Service{LLM: client}
	r := server.NewRouter(cfg, resumes.NewHandler(svc))

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func buildLLMClient(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
