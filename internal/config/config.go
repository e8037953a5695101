package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL  string `env:"DATABASE_URL,required"`
	GeminiAPIKey string `env:"GEMINI_API_KEY,required"`

	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Knowledge base
	KnowledgePath string `env:"KNOWLEDGE_CSV" envDefault:"data/nithub_questions.csv"`

	// Models
	GenerationModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	EmbeddingModel  string `env:"GEMINI_EMBEDDING_MODEL" envDefault:"text-embedding-004"`

	// Organization identity used in prompts and follow-up phrasing
	OrgName        string `env:"ORG_NAME" envDefault:"Nithub"`
	OrgDescription string `env:"ORG_DESCRIPTION" envDefault:"an innovation hub in Lagos"`

	// When enabled, follow-up synthesis falls back to the LLM for
	// questions no pattern matches. Off by default to keep the request
	// path at one LLM call.
	FollowUpLLMFallback bool `env:"FOLLOWUP_LLM_FALLBACK" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
