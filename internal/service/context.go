package service

import (
	"strings"
	"unicode"
)

// stopWords are excluded from keyword extraction; question scaffolding and
// first/second-person words carry no topic information.
var stopWords = map[string]struct{}{
	"the": {}, "what": {}, "where": {}, "when": {}, "how": {}, "why": {},
	"who": {}, "is": {}, "are": {}, "do": {}, "does": {}, "can": {},
	"will": {}, "would": {}, "like": {}, "to": {}, "know": {}, "about": {},
	"our": {}, "you": {}, "your": {}, "we": {}, "us": {},
}

// referenceWords in a question almost always point back at the previous
// turn's topic.
var referenceWords = map[string]struct{}{
	"it": {}, "they": {}, "them": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "here": {}, "there": {},
}

var continuationPrefixes = []string{"and ", "also ", "what about", "how about"}

var continuationTokens = map[string]struct{}{
	"more": {}, "another": {}, "other": {}, "else": {},
}

// ContextService decides, without an LLM call, whether a new question
// continues the previous turn's topic, and renders the previous turn as
// prompt context.
type ContextService struct {
	// OverlapThreshold is the minimum shared-keyword ratio for two
	// questions to count as related.
	OverlapThreshold float64
}

func NewContextService(overlapThreshold float64) *ContextService {
	return &ContextService{OverlapThreshold: overlapThreshold}
}

// IsRelated applies the relatedness heuristics in order; the first match
// wins. With no previous turn the caller must not invoke this at all.
func (c *ContextService) IsRelated(prevQuestion, prevAnswer, currQuestion string) bool {
	tokens := tokenize(currQuestion)

	for _, t := range tokens {
		if _, ok := referenceWords[t]; ok {
			return true
		}
	}

	currLower := strings.ToLower(strings.TrimSpace(currQuestion))
	for _, p := range continuationPrefixes {
		if strings.HasPrefix(currLower, p) {
			return true
		}
	}
	for _, t := range tokens {
		if _, ok := continuationTokens[t]; ok {
			return true
		}
	}

	currKeywords := extractKeywords(currQuestion)
	if len(currKeywords) == 0 {
		return false
	}
	prevKeywords := extractKeywords(prevQuestion + " " + prevAnswer)
	shared := 0
	for kw := range currKeywords {
		if _, ok := prevKeywords[kw]; ok {
			shared++
		}
	}
	return float64(shared)/float64(len(currKeywords)) > c.OverlapThreshold
}

// BuildContext renders the previous turn for inclusion in the generation
// prompt.
func (c *ContextService) BuildContext(prevQuestion, prevAnswer, prevFollowUp string) string {
	var b strings.Builder
	b.WriteString("Previous question: ")
	b.WriteString(prevQuestion)
	b.WriteString("\nPrevious answer: ")
	b.WriteString(prevAnswer)
	b.WriteString("\n")
	if prevFollowUp != "" {
		b.WriteString("Previous follow-up suggestion: ")
		b.WriteString(prevFollowUp)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// extractKeywords keeps lowercased content words longer than three
// characters that are not stop-words.
func extractKeywords(text string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, t := range tokenize(text) {
		if len(t) <= 3 {
			continue
		}
		if _, ok := stopWords[t]; ok {
			continue
		}
		keywords[t] = struct{}{}
	}
	return keywords
}
