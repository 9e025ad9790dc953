package faq

import (
	"strings"

	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/kb"
)

// verbatimBonus is added when any query token appears verbatim in the
// entry's question text.
const verbatimBonus = 0.2

// KeywordIndex scores queries by Jaccard overlap of token sets. It needs no
// precomputed statistics, which keeps cold starts cheap on tiny corpora.
type KeywordIndex struct {
	entries []domain.FAQEntry
	store   *kb.Store
	sets    []map[string]bool
}

// NewKeywordIndex tokenizes the corpus once up front.
func NewKeywordIndex(entries []domain.FAQEntry, store *kb.Store) *KeywordIndex {
	idx := &KeywordIndex{
		entries: entries,
		store:   store,
		sets:    make([]map[string]bool, len(entries)),
	}
	for i, e := range entries {
		idx.sets[i] = tokenSet(e.Question + " " + e.AnswerTemplate)
	}
	return idx
}

// Search returns the best overlap match at or above threshold, or nil.
func (idx *KeywordIndex) Search(query string, threshold float64) *domain.SearchResult {
	if len(idx.entries) == 0 {
		return nil
	}

	qset := tokenSet(query)

	best := -1
	bestScore := 0.0
	for i, set := range idx.sets {
		score := jaccard(qset, set)
		if questionContainsAny(strings.ToLower(idx.entries[i].Question), qset) {
			score += verbatimBonus
		}
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	if bestScore < threshold {
		return nil
	}

	entry := idx.entries[best]
	return &domain.SearchResult{
		Entry:          entry,
		Score:          bestScore,
		ExtractedFacts: ExtractFacts(entry.AnswerTemplate, idx.store),
	}
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// questionContainsAny expects question to be lowercased already; tokens are
// emitted lowercased by the tokenizer.
func questionContainsAny(question string, tokens map[string]bool) bool {
	for tok := range tokens {
		if strings.Contains(question, tok) {
			return true
		}
	}
	return false
}
