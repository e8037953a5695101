package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRewriter struct {
	result string
	err    error
	called bool
}

func (r *stubRewriter) RewriteInvitation(ctx context.Context, question string) (string, error) {
	r.called = true
	return r.result, r.err
}

func TestGeneratePatterns(t *testing.T) {
	svc := NewFollowupService(nil)
	ctx := context.Background()

	tests := []struct {
		question string
		want     string
	}{
		{"What is Nithub?", "Would you like to know more about Nithub?"},
		{"Where is Nithub located?", "Would you like to know how to visit us?"},
		{"Tell me more about your incubation program", "Would you like to know about our programs?"},
		{"How do I register for training?", "Would you like to know how to sign up to our programs?"},
		{"How do I contact the team?", "Would you like to know how to contact us?"},
		{"Who runs the research department?", "Would you like to know about our research team?"},
		{"Who founded the company?", "Would you like to know about our team?"},
		{"When do applications open?", "Would you like to know about our programs?"},
		{"Why was Nithub created?", "Would you like to know more about what we do?"},
		{"Can I bring my laptop?", "Would you like to know how to bring my laptop?"},
		{"Are internships paid?", "Would you like to know about our internship opportunities?"},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Generate(ctx, tt.question, "some answer"))
		})
	}
}

func TestGenerateNoMatchWithoutRewriter(t *testing.T) {
	svc := NewFollowupService(nil)

	assert.Equal(t, "", svc.Generate(context.Background(), "Bananas?", "answer"))
	assert.Equal(t, "", svc.Generate(context.Background(), "   ", "answer"))
}

func TestGenerateRewriterFallback(t *testing.T) {
	rw := &stubRewriter{result: `  "Would you like to know about our mission"  `}
	svc := NewFollowupService(rw)

	got := svc.Generate(context.Background(), "Bananas?", "answer")
	assert.True(t, rw.called)
	assert.Equal(t, "Would you like to know about our mission?", got)
}

func TestGenerateRewriterErrorDegradesToEmpty(t *testing.T) {
	rw := &stubRewriter{err: errors.New("model down")}
	svc := NewFollowupService(rw)

	assert.Equal(t, "", svc.Generate(context.Background(), "Bananas?", "answer"))
}

func TestGenerateRewriterNotCalledWhenPatternMatches(t *testing.T) {
	rw := &stubRewriter{result: "should not be used?"}
	svc := NewFollowupService(rw)

	got := svc.Generate(context.Background(), "What is Nithub?", "answer")
	assert.Equal(t, "Would you like to know more about Nithub?", got)
	assert.False(t, rw.called)
}

func TestCleanInvitation(t *testing.T) {
	assert.Equal(t, "Would you like to know more?", cleanInvitation("Would you like   to know more?"))
	assert.Equal(t, "Would you like to know more?", cleanInvitation(`"Would you like to know more."`))
	assert.Equal(t, "", cleanInvitation("   "))
}
