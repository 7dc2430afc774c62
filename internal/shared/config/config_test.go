package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("ENV", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, []string{"*"}) {
		t.Fatalf("expected allow-all CORS default, got %v", cfg.CORSAllowOrigin)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("expected default provider openai, got %q", cfg.LLMProvider)
	}
	if cfg.LLMModel != "gpt-4o-mini" {
		t.Fatalf("expected default model gpt-4o-mini, got %q", cfg.LLMModel)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
}

func TestLoadSplitsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test ,")

	cfg := Load()

	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.CORSAllowOrigin, want) {
		t.Fatalf("expected origins %v, got %v", want, cfg.CORSAllowOrigin)
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "prod", want: "production"},
		{raw: "Production", want: "production"},
		{raw: "staging", want: "staging"},
		{raw: "local", want: "local"},
		{raw: "development", want: "dev"},
		{raw: "nonsense", want: "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.raw); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
