package domain

// KnowledgeFact is a single fact in the knowledge base. Facts are loaded once
// at startup and are immutable for the process lifetime.
type KnowledgeFact struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// FAQEntry is one canned question/answer-template pair. The set of entries is
// the entire ground truth; nothing is ever synthesized beyond them.
type FAQEntry struct {
	Question       string `yaml:"question"`
	AnswerTemplate string `yaml:"answer_template"`
	Category       string `yaml:"category"`
}

// SearchResult is the outcome of a single FAQ lookup.
// ExtractedFacts holds only the knowledge-base keys whose {KEY} placeholder
// literally occurs in the winning entry's answer template.
type SearchResult struct {
	Entry          FAQEntry
	Score          float64
	ExtractedFacts map[string]string
}
