package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrIndexNotBuilt is returned when a query arrives before any indexing
// pass has completed.
var ErrIndexNotBuilt = errors.New("search index not built")

// ErrUnknownFilter is returned for filter keys outside the supported set.
var ErrUnknownFilter = errors.New("unknown filter key")

const (
	// maxQueryLength truncates pathological queries.
	maxQueryLength = 100
	// DefaultLimit caps results when the caller does not say otherwise.
	DefaultLimit = 20

	scoreExactPrefix = 10
	scoreWord        = 5
	scoreMetaphone   = 3
)

// Match is one scored search hit.
type Match struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Resolver answers fuzzy queries over the posting sets. It is a pure
// function over postings fetched through the store handle; scoring happens
// in process.
type Resolver struct {
	st postingStore
}

// postingStore is the slice of the store the resolver needs.
type postingStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SMembers(ctx context.Context, key string) ([]string, error)
}

// NewResolver creates a resolver over the given store.
func NewResolver(st postingStore) *Resolver {
	return &Resolver{st: st}
}

// Resolve runs the layered scoring over the namespace's postings:
// exact-prefix hits score 10 and return early when they alone fill the
// limit; word hits add 5 per document; n-gram overlap adds the overlap
// count when it clears the cutoff; a metaphone hit adds 3. Results are
// ordered by score descending, id ascending.
func (r *Resolver) Resolve(ctx context.Context, ns Namespace, query string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	if runes := []rune(q); len(runes) > maxQueryLength {
		q = string(runes[:maxQueryLength])
	}

	if err := r.ensureReady(ctx); err != nil {
		return nil, err
	}

	scores := make(map[string]float64)

	prefixHits, err := r.st.SMembers(ctx, ns.PrefixKey(q))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prefix postings: %w", err)
	}
	for _, id := range prefixHits {
		scores[id] += scoreExactPrefix
	}
	// Enough exact prefix matches fill the result on their own.
	if len(prefixHits) >= limit {
		return rank(scores, limit), nil
	}

	// Query words are whitespace fields looked up verbatim, so a token
	// carrying punctuation misses the word postings.
	for _, word := range strings.Fields(q) {
		if len([]rune(word)) < minWordLength {
			continue
		}
		hits, err := r.st.SMembers(ctx, ns.WordKey(word))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch word postings: %w", err)
		}
		for _, id := range hits {
			scores[id] += scoreWord
		}
	}

	if qLen := len([]rune(q)); qLen >= ngramSize {
		overlap := make(map[string]int)
		for _, gram := range NGrams(q) {
			hits, err := r.st.SMembers(ctx, ns.NGramKey(gram))
			if err != nil {
				return nil, fmt.Errorf("failed to fetch ngram postings: %w", err)
			}
			for _, id := range hits {
				overlap[id]++
			}
		}
		cutoff := (qLen - 2) * 3 / 10
		if cutoff < 1 {
			cutoff = 1
		}
		for id, count := range overlap {
			if count >= cutoff {
				scores[id] += float64(count)
			}
		}
	}

	if code := Metaphone(q); code != "" {
		hits, err := r.st.SMembers(ctx, ns.MetaphoneKey(code))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch metaphone postings: %w", err)
		}
		for _, id := range hits {
			scores[id] += scoreMetaphone
		}
	}

	return rank(scores, limit), nil
}

func (r *Resolver) ensureReady(ctx context.Context) error {
	_, found, err := r.st.Get(ctx, KeyReady)
	if err != nil {
		return fmt.Errorf("failed to check index state: %w", err)
	}
	if !found {
		return ErrIndexNotBuilt
	}
	return nil
}

// rank orders candidates by score descending, id ascending, and truncates.
func rank(scores map[string]float64, limit int) []Match {
	matches := make([]Match, 0, len(scores))
	for id, score := range scores {
		matches = append(matches, Match{ID: id, Score: score})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
