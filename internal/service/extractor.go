package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// QuestionExtractor reverses the invitation templates of the follow-up
// synthesizer: given "Would you like to know how to visit us?" it recovers
// the direct question the invitation implies ("How do I visit Nithub?").
// It is only invoked after the affirmative-reply predicate has matched.
type QuestionExtractor struct {
	orgName string
	usRe    *regexp.Regexp
	youRe   *regexp.Regexp
}

func NewQuestionExtractor(orgName string) *QuestionExtractor {
	return &QuestionExtractor{
		orgName: orgName,
		usRe:    regexp.MustCompile(`(?i)\bus\b`),
		youRe:   regexp.MustCompile(`(?i)\byou\b`),
	}
}

// invitationTemplate pairs an invitation prefix with the direct-question
// form it reverses to. Ordered most specific first; the first prefix that
// matches wins.
type invitationTemplate struct {
	prefix  string
	rebuild func(e *QuestionExtractor, topic string) string
}

var invitationTemplates = []invitationTemplate{
	{"would you like to know the benefits of ", func(e *QuestionExtractor, t string) string {
		return fmt.Sprintf("What are the benefits of %s?", e.rewritePronouns(t))
	}},
	{"would you like to know more about ", func(e *QuestionExtractor, t string) string {
		return e.directQuestion(t, "What is %s?")
	}},
	{"would you like to know how to ", func(e *QuestionExtractor, t string) string {
		return fmt.Sprintf("How do I %s?", e.rewritePronouns(t))
	}},
	{"would you like to know how ", func(e *QuestionExtractor, t string) string {
		return fmt.Sprintf("How do you %s?", e.rewritePronouns(t))
	}},
	{"would you like to know about ", func(e *QuestionExtractor, t string) string {
		return e.rebuildAbout(t)
	}},
	{"would you like to know ", func(e *QuestionExtractor, t string) string {
		return e.directQuestion(t, "What is %s?")
	}},
	{"would you like to ", func(e *QuestionExtractor, t string) string {
		return e.directQuestion(t, "What is %s?")
	}},
}

var questionWords = []string{"what", "how", "when", "where", "why", "who"}

// Extract converts an invitation-phrased follow-up back into a direct
// question. Unrecognized invitations are returned unchanged; this is
// best-effort and never fails.
func (e *QuestionExtractor) Extract(invitation string) string {
	trimmed := strings.TrimSpace(invitation)
	low := strings.ToLower(trimmed)

	for _, tpl := range invitationTemplates {
		if !strings.HasPrefix(low, tpl.prefix) {
			continue
		}
		topic := strings.TrimSpace(strings.Trim(trimmed[len(tpl.prefix):], "?. "))
		if topic == "" {
			return invitation
		}
		return tpl.rebuild(e, topic)
	}
	return invitation
}

// directQuestion passes through topics that already read as questions and
// otherwise wraps them in the given template.
func (e *QuestionExtractor) directQuestion(topic, format string) string {
	if startsWithQuestionWord(topic) {
		q := capitalizeFirst(e.rewritePronouns(topic))
		if !strings.HasSuffix(q, "?") {
			q += "?"
		}
		return q
	}
	low := strings.ToLower(topic)
	switch {
	case strings.HasPrefix(low, "how to "):
		return fmt.Sprintf("How do I %s?", e.rewritePronouns(topic[len("how to "):]))
	case strings.HasPrefix(low, "our "):
		return fmt.Sprintf("What are our %s?", topic[len("our "):])
	case strings.HasPrefix(low, "the "):
		return fmt.Sprintf("What are the %s?", topic[len("the "):])
	}
	return fmt.Sprintf(format, e.rewritePronouns(topic))
}

func (e *QuestionExtractor) rebuildAbout(topic string) string {
	low := strings.ToLower(topic)
	switch {
	case strings.HasPrefix(low, "our "):
		return fmt.Sprintf("What are our %s?", topic[len("our "):])
	case strings.HasPrefix(low, "the "):
		return fmt.Sprintf("What are the %s?", topic[len("the "):])
	case startsWithQuestionWord(topic):
		return e.directQuestion(topic, "What is %s?")
	}
	return fmt.Sprintf("Tell me about %s?", e.rewritePronouns(topic))
}

// rewritePronouns replaces the invitation's first-person plural ("us",
// "you") with the organization name so the rebuilt question stands alone.
func (e *QuestionExtractor) rewritePronouns(text string) string {
	text = e.usRe.ReplaceAllString(text, e.orgName)
	text = e.youRe.ReplaceAllString(text, e.orgName)
	return strings.Join(strings.Fields(text), " ")
}

func startsWithQuestionWord(text string) bool {
	low := strings.ToLower(text)
	for _, qw := range questionWords {
		if low == qw || strings.HasPrefix(low, qw+" ") {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
