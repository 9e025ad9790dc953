// Package faq implements retrieval over the FAQ corpus. Two backends share
// one Search contract: a TF-IDF cosine index and a lighter keyword-overlap
// index. Which one serves a deployment is a configuration detail; both honor
// the same thresholding and none-on-empty-corpus semantics.
package faq

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/kb"
)

// DefaultThreshold is the minimum score for a match to count as found.
const DefaultThreshold = 0.3

// Search backend names accepted by NewIndex.
const (
	BackendTFIDF   = "tfidf"
	BackendKeyword = "keyword"
)

// Index finds the best-matching FAQ entry for a query. Search returns nil
// when the corpus is empty or the best score is strictly below threshold.
// Results are deterministic for identical input; ties keep the entry with
// the lowest corpus index.
type Index interface {
	Search(query string, threshold float64) *domain.SearchResult
}

// NewIndex builds the configured search backend over the given corpus.
// Unknown backend names fall back to TF-IDF.
func NewIndex(backend string, entries []domain.FAQEntry, store *kb.Store) Index {
	if backend == BackendKeyword {
		return NewKeywordIndex(entries, store)
	}
	return NewTFIDFIndex(entries, store)
}

type entriesFile struct {
	Entries []domain.FAQEntry `yaml:"entries"`
}

// LoadEntries reads the FAQ corpus from a YAML file. Missing or malformed
// files degrade to an empty corpus with a warning, which makes every search
// return no match.
func LoadEntries(path string, log *zap.Logger) []domain.FAQEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("faq corpus unavailable, starting empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	var file entriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Warn("faq corpus malformed, starting empty",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	log.Info("faq corpus loaded", zap.String("path", path), zap.Int("entries", len(file.Entries)))
	return file.Entries
}
