package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-generator/internal/llm"
	openai "resume-generator/internal/llm/openai"
	"resume-generator/internal/resumes"
	"resume-generator/internal/shared/config"
)

func main() {
	cfg := config.Load()

	role := flag.String("role", "", "Target job role")
	skillsCSV := flag.String("skills", "", "Comma-separated skill list")
	model := flag.String("model", cfg.LLMModel, "LLM model")
	execute := flag.Bool("execute", false, "Send the prompt to the configured provider")
	flag.Parse()

	if strings.TrimSpace(*role) == "" {
		exitErr("role is required")
	}
	skills := splitSkills(*skillsCSV)
	if len(skills) == 0 {
		exitErr("at least one skill is required")
	}

	req := resumes.GenerationRequest{JobRole: *role, Skills: skills}
	prompt := resumes.BuildPrompt(req.JobRole, req.Skills)

	if !*execute {
		fmt.Println(prompt)
		return
	}

	client, err := openai.NewClient(cfg.OpenAIAPIKey, *model)
	if err != nil {
		exitErr(err.Error())
	}
	runPrompt(client, prompt, req)
}

func runPrompt(client llm.Client, prompt string, req resumes.GenerationRequest) {
	content, err := client.Complete(context.Background(), prompt)
	if err != nil {
		exitErr(fmt.Sprintf("complete prompt: %v", err))
	}

	doc := resumes.Normalize(content, req)
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("marshal document: %v", err))
	}
	fmt.Println(string(out))
}

func splitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
