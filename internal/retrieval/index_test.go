package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keywordEmbedder produces a vector with one dimension per known keyword,
// so cosine ranking is fully predictable in tests.
type keywordEmbedder struct {
	keywords []string
	err      error
}

func (e *keywordEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e.err != nil {
		return nil, e.err
	}
	low := strings.ToLower(text)
	vec := make([]float64, len(e.keywords))
	for i, kw := range e.keywords {
		vec[i] = float64(strings.Count(low, kw))
	}
	return vec, nil
}

var testEntries = []Entry{
	{Question: "What is Nithub?", Answer: "Nithub is an innovation hub."},
	{Question: "Where is Nithub located?", Answer: "Nithub is located in Lagos."},
	{Question: "What training does Nithub offer?", Answer: "Software training programs."},
}

func TestBuildIndexAndRetrieve(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"nithub", "located", "lagos", "training", "innovation"}}

	index, err := BuildIndex(context.Background(), embedder, testEntries, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, index.Size())

	snippets, err := index.Retrieve(context.Background(), "Where is Nithub located?")
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "Where is Nithub located?", snippets[0].Question)
	assert.Greater(t, snippets[0].Score, snippets[1].Score)
}

func TestRetrieveTopKBoundedBySize(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"nithub", "training"}}

	index, err := BuildIndex(context.Background(), embedder, testEntries, 10)
	require.NoError(t, err)

	snippets, err := index.Retrieve(context.Background(), "nithub training")
	require.NoError(t, err)
	assert.Len(t, snippets, 3)
}

func TestBuildIndexEmbedderError(t *testing.T) {
	embedder := &keywordEmbedder{err: errors.New("api down")}

	_, err := BuildIndex(context.Background(), embedder, testEntries, 2)
	assert.Error(t, err)
}

func TestRetrieveZeroNormQuery(t *testing.T) {
	embedder := &keywordEmbedder{keywords: []string{"nithub"}}

	index, err := BuildIndex(context.Background(), embedder, testEntries, 2)
	require.NoError(t, err)

	_, err = index.Retrieve(context.Background(), "completely unrelated words")
	assert.Error(t, err)
}
