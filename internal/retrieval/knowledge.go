package retrieval

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Entry is one question-answer pair from the knowledge base.
type Entry struct {
	Question string
	Answer   string
}

// LoadCSV reads the knowledge base from a CSV file with Question and
// Answer columns. Column order is taken from the header row; rows with
// an empty question or answer are skipped.
func LoadCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	qCol, aCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			qCol = i
		case "answer":
			aCol = i
		}
	}
	if qCol < 0 || aCol < 0 {
		return nil, fmt.Errorf("knowledge base must have Question and Answer columns, got %v", header)
	}

	var entries []Entry
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if len(record) <= qCol || len(record) <= aCol {
			continue
		}
		q := strings.TrimSpace(record[qCol])
		a := strings.TrimSpace(record[aCol])
		if q == "" || a == "" {
			continue
		}
		entries = append(entries, Entry{Question: q, Answer: a})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("knowledge base %s has no usable rows", path)
	}
	return entries, nil
}
