package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nithub/faq-agent/internal/domain"
)

// LLM is the text-generation capability the answer generator depends on.
type LLM interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AnswerGenerator produces the final answer text for a question from the
// retrieved knowledge snippets, and doubles as the LLM-backed invitation
// rewriter for follow-up synthesis.
type AnswerGenerator struct {
	llm            LLM
	orgName        string
	orgDescription string
	wordLimit      int
}

func NewAnswerGenerator(llm LLM, orgName, orgDescription string, wordLimit int) *AnswerGenerator {
	return &AnswerGenerator{
		llm:            llm,
		orgName:        orgName,
		orgDescription: orgDescription,
		wordLimit:      wordLimit,
	}
}

func (g *AnswerGenerator) GenerateAnswer(ctx context.Context, question string, snippets []domain.Snippet, priorContext string, related bool) (string, error) {
	contextBlock := formatSnippets(snippets)
	prompt := buildAnswerPrompt(g.orgName, g.orgDescription, contextBlock, question, priorContext, related)

	text, err := g.llm.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return normalizeAnswer(text, g.wordLimit), nil
}

func (g *AnswerGenerator) RewriteInvitation(ctx context.Context, question string) (string, error) {
	return g.llm.GenerateContent(ctx, buildFollowUpPrompt(g.orgName, question))
}

func formatSnippets(snippets []domain.Snippet) string {
	parts := make([]string, len(snippets))
	for i, s := range snippets {
		parts[i] = fmt.Sprintf("Q: %s\nA: %s", s.Question, s.Answer)
	}
	return strings.Join(parts, "\n\n")
}

// normalizeAnswer collapses whitespace and enforces the word limit. When
// truncating, the answer is cut back to the last sentence boundary if one
// falls in the final fifth of the text, so it does not end mid-sentence.
func normalizeAnswer(text string, wordLimit int) string {
	words := strings.Fields(text)
	if wordLimit <= 0 || len(words) <= wordLimit {
		return strings.Join(words, " ")
	}

	answer := strings.Join(words[:wordLimit], " ")
	if !strings.ContainsAny(answer[len(answer)-1:], ".!?") {
		if idx := strings.LastIndex(answer, "."); idx > len(answer)*4/5 {
			answer = answer[:idx+1]
		}
	}
	return answer
}
