package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// InvitationRewriter rewrites a question as a "Would you like to know..."
// invitation using an LLM. It is only consulted when no pattern matches.
type InvitationRewriter interface {
	RewriteInvitation(ctx context.Context, question string) (string, error)
}

// FollowupService turns the question just answered into a short invitation
// for the next one. The pattern table below handles the common question
// shapes without an LLM call; the optional rewriter covers the rest, and
// any rewriter failure degrades to no follow-up.
type FollowupService struct {
	rewriter InvitationRewriter
}

func NewFollowupService(rewriter InvitationRewriter) *FollowupService {
	return &FollowupService{rewriter: rewriter}
}

// topicInvitations maps distinctive topic keywords to canned invitations.
var topicInvitations = []struct {
	keywords   []string
	invitation string
}{
	{[]string{"program"}, "Would you like to know about our programs?"},
	{[]string{"location", "located", "where", "visit"}, "Would you like to know how to visit us?"},
	{[]string{"training", "course"}, "Would you like to know about our training programs?"},
	{[]string{"incubation", "startup"}, "Would you like to know the benefits of joining our incubation team?"},
	{[]string{"event"}, "Would you like to know about our events?"},
	{[]string{"internship"}, "Would you like to know about our internship opportunities?"},
	{[]string{"team"}, "Would you like to know about our team?"},
	{[]string{"contact", "reach"}, "Would you like to know how to contact us?"},
}

// followupPattern pairs a question predicate with an invitation template.
// Patterns are evaluated top to bottom; the first match wins.
type followupPattern struct {
	match  func(q string) (topic string, ok bool)
	render func(topic string) string
}

var followupPatterns = []followupPattern{
	{matchAfter("what is ", "what are "), renderMoreAbout},
	{matchAfter("tell me more about ", "tell me about ", "tell me "), renderMoreAbout},
	{matchAfter("how to ", "how do i ", "how can i "), renderHowTo},
	{matchContains("how"), func(string) string { return "Would you like to know how we can help you?" }},
	{matchContains("where"), func(string) string { return "Would you like to know how to visit us?" }},
	{matchContains("who"), renderWho},
	{matchContains("when"), func(string) string { return "Would you like to know about our programs?" }},
	{matchContains("why"), func(string) string { return "Would you like to know more about what we do?" }},
	{matchPrefix("can i "), renderHowTo},
	{matchPrefix("are "), renderAbout},
	{matchTopicKeyword(), func(topic string) string { return topic }},
}

// Generate produces an invitation-phrased follow-up from the question just
// answered, or "" when nothing fits. An empty result is a valid outcome
// and must never fail the request.
func (f *FollowupService) Generate(ctx context.Context, question, answer string) string {
	q := strings.TrimSpace(question)
	if q == "" {
		return ""
	}

	for _, p := range followupPatterns {
		if topic, ok := p.match(q); ok {
			return p.render(topic)
		}
	}

	if f.rewriter == nil {
		return ""
	}
	raw, err := f.rewriter.RewriteInvitation(ctx, q)
	if err != nil {
		slog.Warn("follow-up rewrite failed", "error", err)
		return ""
	}
	return cleanInvitation(raw)
}

// matchAfter matches when the question contains one of the markers and
// extracts everything after it, preserving the original casing.
func matchAfter(markers ...string) func(string) (string, bool) {
	return func(q string) (string, bool) {
		low := strings.ToLower(q)
		for _, m := range markers {
			if idx := strings.Index(low, m); idx >= 0 {
				return strings.TrimSpace(strings.Trim(q[idx+len(m):], "?.! ")), true
			}
		}
		return "", false
	}
}

func matchPrefix(prefix string) func(string) (string, bool) {
	return func(q string) (string, bool) {
		low := strings.ToLower(q)
		if !strings.HasPrefix(low, prefix) {
			return "", false
		}
		return strings.TrimSpace(strings.Trim(q[len(prefix):], "?.! ")), true
	}
}

func matchContains(word string) func(string) (string, bool) {
	return func(q string) (string, bool) {
		for _, t := range tokenize(q) {
			if t == word {
				return q, true
			}
		}
		return "", false
	}
}

// matchTopicKeyword is the last resort before the LLM fallback: any canned
// topic keyword anywhere in the question selects its invitation directly.
func matchTopicKeyword() func(string) (string, bool) {
	return func(q string) (string, bool) {
		if inv, ok := cannedInvitation(q); ok {
			return inv, true
		}
		return "", false
	}
}

func cannedInvitation(text string) (string, bool) {
	low := strings.ToLower(text)
	for _, ti := range topicInvitations {
		for _, kw := range ti.keywords {
			if strings.Contains(low, kw) {
				return ti.invitation, true
			}
		}
	}
	return "", false
}

func renderMoreAbout(topic string) string {
	if topic == "" {
		return "Would you like to know more?"
	}
	if inv, ok := cannedInvitation(topic); ok {
		return inv
	}
	return fmt.Sprintf("Would you like to know more about %s?", topic)
}

func renderHowTo(action string) string {
	if action == "" {
		return "Would you like to know more?"
	}
	low := strings.ToLower(action)
	if strings.Contains(low, "sign up") || strings.Contains(low, "register") || strings.Contains(low, "join") {
		return "Would you like to know how to sign up to our programs?"
	}
	if strings.Contains(low, "contact") || strings.Contains(low, "reach") {
		return "Would you like to know how to contact us?"
	}
	return fmt.Sprintf("Would you like to know how to %s?", action)
}

func renderWho(topic string) string {
	if strings.Contains(strings.ToLower(topic), "research") {
		return "Would you like to know about our research team?"
	}
	return "Would you like to know about our team?"
}

func renderAbout(topic string) string {
	if topic == "" {
		return "Would you like to know more?"
	}
	if inv, ok := cannedInvitation(topic); ok {
		return inv
	}
	return fmt.Sprintf("Would you like to know about %s?", topic)
}

// cleanInvitation normalizes LLM output: collapsed whitespace, no wrapping
// quotes, guaranteed trailing question mark.
func cleanInvitation(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	for _, quote := range []string{`"`, "'"} {
		if len(s) >= 2 && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) {
			s = s[1 : len(s)-1]
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasSuffix(s, "?") {
		s = strings.TrimRight(s, ".") + "?"
	}
	return s
}
