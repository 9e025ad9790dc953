// Package kb holds the knowledge base: the fixed set of fact key/value pairs
// that is the sole ground truth for answering questions. The store is loaded
// once at startup and is read-only afterwards, so it is safe to share across
// goroutines without locking.
package kb

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hikarisalon/concierge/internal/domain"
)

// Store is an immutable mapping of fact keys to values.
type Store struct {
	facts map[string]string
}

// NewStore builds a store from a list of facts. Duplicate keys keep the
// first occurrence.
func NewStore(facts []domain.KnowledgeFact) *Store {
	m := make(map[string]string, len(facts))
	for _, f := range facts {
		if f.Key == "" {
			continue
		}
		if _, exists := m[f.Key]; exists {
			continue
		}
		m[f.Key] = f.Value
	}
	return &Store{facts: m}
}

// Get returns the value for a fact key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.facts[key]
	return v, ok
}

// Len returns the number of loaded facts.
func (s *Store) Len() int {
	return len(s.facts)
}

type factsFile struct {
	Facts []domain.KnowledgeFact `yaml:"facts"`
}

// Load reads the fact corpus from a YAML file. A missing or malformed file
// degrades to an empty store with a warning; question answering then refuses
// every query instead of the process crashing.
func Load(path string, log *zap.Logger) *Store {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("kb corpus unavailable, starting with empty store",
			zap.String("path", path), zap.Error(err))
		return NewStore(nil)
	}

	var file factsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.Warn("kb corpus malformed, starting with empty store",
			zap.String("path", path), zap.Error(err))
		return NewStore(nil)
	}

	log.Info("kb corpus loaded", zap.String("path", path), zap.Int("facts", len(file.Facts)))
	return NewStore(file.Facts)
}
