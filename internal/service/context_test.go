package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelated(t *testing.T) {
	svc := NewContextService(0.25)

	prevQ := "What is Nithub?"
	prevA := "Nithub is an innovation hub in Lagos offering training programs and incubation."

	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"reference word", "Where is it located?", true},
		{"reference word them", "Tell me about them", true},
		{"continuation prefix and", "And the training?", true},
		{"continuation prefix what about", "What about the incubation program?", true},
		{"continuation token more", "Can you say more?", true},
		{"keyword overlap", "What training does Nithub offer?", true},
		{"unrelated topic", "What are your opening hours?", false},
		{"no shared keywords", "Do you serve food?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsRelated(prevQ, prevA, tt.question))
		})
	}
}

func TestIsRelatedReferenceIsTokenized(t *testing.T) {
	svc := NewContextService(0.25)

	// "visit" contains "it" as a substring but is not a reference.
	assert.False(t, svc.IsRelated("What is Nithub?", "An innovation hub.", "Can people visit Lagos?"))
}

func TestBuildContext(t *testing.T) {
	svc := NewContextService(0.25)

	got := svc.BuildContext("What is Nithub?", "An innovation hub.", "Would you like to know more?")
	assert.Contains(t, got, "Previous question: What is Nithub?")
	assert.Contains(t, got, "Previous answer: An innovation hub.")
	assert.Contains(t, got, "Previous follow-up suggestion: Would you like to know more?")

	got = svc.BuildContext("q", "a", "")
	assert.NotContains(t, got, "follow-up suggestion")
}

func TestExtractKeywords(t *testing.T) {
	got := extractKeywords("What training programs does Nithub offer to you?")
	assert.Contains(t, got, "training")
	assert.Contains(t, got, "programs")
	assert.Contains(t, got, "nithub")
	assert.Contains(t, got, "offer")
	assert.NotContains(t, got, "what")
	assert.NotContains(t, got, "does")
	assert.NotContains(t, got, "you")
}
