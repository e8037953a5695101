package retrieval

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"

	"github.com/nithub/faq-agent/internal/config"
	"github.com/nithub/faq-agent/internal/domain"
)

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Index is an in-memory flat vector index over the knowledge base. The
// base is small enough that brute-force cosine scan beats any ANN
// structure; vectors and their norms are computed once at startup and
// the index is read-only afterwards, so lookups need no locking.
type Index struct {
	embedder Embedder
	entries  []Entry
	vectors  [][]float64
	norms    []float64
	topK     int
}

// BuildIndex embeds every knowledge entry and assembles the index.
// Embedding calls run concurrently, bounded by EmbedConcurrency.
func BuildIndex(ctx context.Context, embedder Embedder, entries []Entry, topK int) (*Index, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to index")
	}

	vectors := make([][]float64, len(entries))
	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(config.EmbedConcurrency)
	for i, entry := range entries {
		p.Go(func(ctx context.Context) error {
			vec, err := embedder.Embed(ctx, docText(entry))
			if err != nil {
				return fmt.Errorf("embed entry %d: %w", i, err)
			}
			vectors[i] = vec
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	dim := len(vectors[0])
	norms := make([]float64, len(vectors))
	for i, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("entry %d has dimension %d, want %d", i, len(vec), dim)
		}
		norms[i] = floats.Norm(vec, 2)
	}

	return &Index{
		embedder: embedder,
		entries:  entries,
		vectors:  vectors,
		norms:    norms,
		topK:     topK,
	}, nil
}

// Retrieve embeds the query and returns the top-k entries by cosine
// similarity.
func (idx *Index) Retrieve(ctx context.Context, query string) ([]domain.Snippet, error) {
	qVec, err := idx.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(qVec) != len(idx.vectors[0]) {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(qVec), len(idx.vectors[0]))
	}
	qNorm := floats.Norm(qVec, 2)
	if qNorm == 0 {
		return nil, fmt.Errorf("query embedding has zero norm")
	}

	type scored struct {
		i     int
		score float64
	}
	ranked := make([]scored, 0, len(idx.vectors))
	for i, vec := range idx.vectors {
		if idx.norms[i] == 0 {
			continue
		}
		score := floats.Dot(qVec, vec) / (qNorm * idx.norms[i])
		ranked = append(ranked, scored{i: i, score: score})
	}
	sort.Slice(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	k := idx.topK
	if k > len(ranked) {
		k = len(ranked)
	}
	snippets := make([]domain.Snippet, 0, k)
	for _, r := range ranked[:k] {
		snippets = append(snippets, domain.Snippet{
			Question: idx.entries[r.i].Question,
			Answer:   idx.entries[r.i].Answer,
			Score:    r.score,
		})
	}
	return snippets, nil
}

// Size returns the number of indexed entries.
func (idx *Index) Size() int {
	return len(idx.entries)
}

func docText(e Entry) string {
	return "Q: " + e.Question + "\nA: " + e.Answer
}
