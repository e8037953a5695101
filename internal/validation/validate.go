package validation

import (
	"strings"

	"github.com/nithub/faq-agent/internal/config"
	"github.com/nithub/faq-agent/internal/domain"
)

// Question trims and checks a submitted question. Returns the trimmed
// text.
func Question(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", domain.ErrEmptyQuestion
	}
	if len(q) > config.MaxQuestionLen {
		return "", domain.ErrQuestionTooLong
	}
	return q, nil
}

// SessionID trims and checks a client-supplied session id. An empty
// string means no session was supplied and is valid.
func SessionID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if len(id) > config.MaxSessionIDLen {
		return "", domain.ErrSessionIDTooLong
	}
	return id, nil
}

// Pagination checks list parameters against the allowed window.
func Pagination(limit, offset int) error {
	if limit < 1 || limit > config.MaxPageLimit {
		return domain.ErrInvalidPagination
	}
	if offset < 0 {
		return domain.ErrInvalidPagination
	}
	return nil
}

var affirmatives = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "sure": true,
	"okay": true, "ok": true, "yup": true, "absolutely": true,
	"definitely": true, "of course": true, "certainly": true,
	"indeed": true, "correct": true, "right": true,
}

// IsAffirmative reports whether the text is a bare affirmative reply
// such as "yes" or "of course". Trailing punctuation is ignored; any
// other wording is not affirmative even if it contains one of the
// words.
func IsAffirmative(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimRight(t, ".,!?")
	t = strings.TrimSpace(t)
	return affirmatives[t]
}
