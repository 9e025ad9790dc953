package faq

import (
	"regexp"

	"github.com/hikarisalon/concierge/internal/kb"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ExtractFacts collects the knowledge-base facts referenced by an answer
// template. Only keys whose {KEY} placeholder literally occurs in the
// template are included; the rest of the KB is never exposed.
func ExtractFacts(template string, store *kb.Store) map[string]string {
	facts := make(map[string]string)
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		key := m[1]
		if _, seen := facts[key]; seen {
			continue
		}
		if v, ok := store.Get(key); ok {
			facts[key] = v
		}
	}
	return facts
}
