package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mtg-indexer/core/store"
	"mtg-indexer/feature/catalog/models"
)

// Document is one searchable entity: an id, the name projections are built
// from, and an optional popularity weight for autocomplete ranking.
type Document struct {
	ID     string
	Name   string
	Weight float64
}

// Indexer builds the posting sets for a corpus. The corpus is partitioned
// into fixed-size chunks; a bounded worker pool builds per-chunk partial
// postings with no shared state, then the partials are folded in chunk-index
// order and persisted through bounded atomic batches.
type Indexer struct {
	st  store.Store
	log *zap.Logger
	cfg Config
}

// NewIndexer creates a search indexer.
func NewIndexer(st store.Store, log *zap.Logger, cfg Config) *Indexer {
	return &Indexer{st: st, log: log, cfg: cfg}
}

// partial holds the postings built from one chunk. Keys are full store keys;
// members are document ids in first-seen order.
type partial struct {
	postings   map[string][]string
	popularity []store.ScoredMember
}

// IndexCards projects every card into the card namespace and feeds the
// autocomplete popularity ranking.
func (ix *Indexer) IndexCards(ctx context.Context, cards []models.Card) error {
	docs := make([]Document, len(cards))
	for i, c := range cards {
		docs[i] = Document{ID: c.UUID, Name: c.Name, Weight: RarityWeight(c.Rarity)}
	}
	return ix.Index(ctx, Cards, docs)
}

// IndexDecks projects every deck into the deck namespace.
func (ix *Indexer) IndexDecks(ctx context.Context, decks []*models.Deck) error {
	docs := make([]Document, len(decks))
	for i, d := range decks {
		docs[i] = Document{ID: d.UUID, Name: d.Name}
	}
	return ix.Index(ctx, Decks, docs)
}

// Index builds and persists the four projections (prefixes, words, n-grams,
// metaphone) for the given documents under the given namespace.
func (ix *Indexer) Index(ctx context.Context, ns Namespace, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	chunkSize := ix.cfg.chunkSize()
	chunkCount := (len(docs) + chunkSize - 1) / chunkSize
	partials := make([]*partial, chunkCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.cfg.workers())
	for idx := 0; idx < chunkCount; idx++ {
		start := idx * chunkSize
		end := start + chunkSize
		if end > len(docs) {
			end = len(docs)
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[idx] = buildPartial(ns, docs[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("indexing pool failed: %w", err)
	}

	// Fold in chunk-index order so first-seen-per-key is stable across runs.
	merged := partial{postings: make(map[string][]string)}
	for _, p := range partials {
		for key, ids := range p.postings {
			merged.postings[key] = append(merged.postings[key], ids...)
		}
		merged.popularity = append(merged.popularity, p.popularity...)
	}

	if err := ix.persist(ctx, &merged); err != nil {
		return err
	}

	ix.log.Info("indexed documents",
		zap.Int("documents", len(docs)),
		zap.Int("chunks", chunkCount),
		zap.Int("posting_keys", len(merged.postings)))
	return nil
}

// buildPartial projects one chunk into local postings. No shared state.
func buildPartial(ns Namespace, docs []Document) *partial {
	p := &partial{postings: make(map[string][]string)}
	for _, doc := range docs {
		for _, word := range Tokenize(doc.Name) {
			p.add(ns.WordKey(word), doc.ID)
			for _, prefix := range Prefixes(word) {
				p.add(ns.PrefixKey(prefix), doc.ID)
			}
		}
		for _, prefix := range Prefixes(doc.Name) {
			p.add(ns.PrefixKey(prefix), doc.ID)
		}
		for _, gram := range NGrams(doc.Name) {
			p.add(ns.NGramKey(gram), doc.ID)
		}
		if code := Metaphone(doc.Name); code != "" {
			p.add(ns.MetaphoneKey(code), doc.ID)
		}
		if doc.Weight > 0 {
			p.popularity = append(p.popularity, store.ScoredMember{
				Member: doc.ID, Score: doc.Weight,
			})
		}
	}
	return p
}

func (p *partial) add(key, id string) {
	ids := p.postings[key]
	if len(ids) > 0 && ids[len(ids)-1] == id {
		return
	}
	p.postings[key] = append(ids, id)
}

func (ix *Indexer) persist(ctx context.Context, merged *partial) error {
	batchSize := ix.cfg.batchSize()
	b := ix.st.Batch()
	flush := func() error {
		if b.Len() < batchSize {
			return nil
		}
		if err := b.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit postings batch: %w", err)
		}
		b = ix.st.Batch()
		return nil
	}

	for key, ids := range merged.postings {
		b.SAdd(key, ids...)
		if err := flush(); err != nil {
			return err
		}
	}
	for _, sm := range merged.popularity {
		b.ZAdd(KeyPopularity, sm.Score, sm.Member)
		if err := flush(); err != nil {
			return err
		}
	}

	if b.Len() > 0 {
		if err := b.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit postings batch: %w", err)
		}
	}
	return nil
}

// MarkReady records that a pass has completed; queries fail loudly before
// this point.
func (ix *Indexer) MarkReady(ctx context.Context) error {
	return ix.st.Set(ctx, KeyReady, time.Now().UTC().Format(time.RFC3339))
}
