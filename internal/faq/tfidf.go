package faq

import (
	"math"

	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/kb"
)

// TFIDFIndex scores queries by cosine similarity over TF-IDF weighted term
// vectors. Each document is the concatenation of an entry's question and
// answer template. The index is built once and read-only afterwards.
type TFIDFIndex struct {
	entries []domain.FAQEntry
	store   *kb.Store
	idf     map[string]float64
	docs    []map[string]float64 // l2-normalized term weights per entry
}

// NewTFIDFIndex builds the TF-IDF vectors for the given corpus.
func NewTFIDFIndex(entries []domain.FAQEntry, store *kb.Store) *TFIDFIndex {
	idx := &TFIDFIndex{
		entries: entries,
		store:   store,
		idf:     make(map[string]float64),
	}

	termFreqs := make([]map[string]float64, len(entries))
	df := make(map[string]int)
	for i, e := range entries {
		tf := make(map[string]float64)
		for _, tok := range Tokenize(e.Question + " " + e.AnswerTemplate) {
			tf[tok]++
		}
		termFreqs[i] = tf
		for tok := range tf {
			df[tok]++
		}
	}

	// Smoothed idf, as if one extra document contained every term.
	n := float64(len(entries))
	for tok, count := range df {
		idx.idf[tok] = math.Log((1+n)/(1+float64(count))) + 1
	}

	idx.docs = make([]map[string]float64, len(entries))
	for i, tf := range termFreqs {
		idx.docs[i] = normalize(weigh(tf, idx.idf))
	}

	return idx
}

// Search returns the best cosine match at or above threshold, or nil.
func (idx *TFIDFIndex) Search(query string, threshold float64) *domain.SearchResult {
	if len(idx.entries) == 0 {
		return nil
	}

	qtf := make(map[string]float64)
	for _, tok := range Tokenize(query) {
		if _, known := idx.idf[tok]; known {
			qtf[tok]++
		}
	}
	qvec := normalize(weigh(qtf, idx.idf))

	best := -1
	bestScore := 0.0
	for i, doc := range idx.docs {
		score := dot(qvec, doc)
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

func weigh(tf map[string]float64, idf map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(tf))
	for tok, f := range tf {
		w, ok := idf[tok]
		if !ok {
			w = 1
		}
		out[tok] = f * w
	}
	return out
}

func normalize(vec map[string]float64) map[string]float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for tok, w := range vec {
		vec[tok] = w / norm
	}
	return vec
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for tok, w := range a {
		sum += w * b[tok]
	}
	return sum
}
