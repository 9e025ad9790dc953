package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hikarisalon/concierge/internal/kb"
	"github.com/hikarisalon/concierge/internal/testutil"
)

func TestExtractFacts_OnlyReferencedKeys(t *testing.T) {
	store := kb.NewStore(testutil.SampleFacts())

	facts := ExtractFacts("お電話は{PHONE}までお願いいたします。", store)
	assert.Equal(t, map[string]string{"PHONE": "03-1234-5678"}, facts)
}

func TestExtractFacts_UnknownKeysSkipped(t *testing.T) {
	store := kb.NewStore(testutil.SampleFacts())

	facts := ExtractFacts("{PHONE}と{NO_SUCH_KEY}", store)
	assert.Equal(t, map[string]string{"PHONE": "03-1234-5678"}, facts)
}

func TestExtractFacts_NoPlaceholders(t *testing.T) {
	store := kb.NewStore(testutil.SampleFacts())

	facts := ExtractFacts("プレースホルダーなしの回答です。", store)
	assert.Empty(t, facts)
}

func TestExtractFacts_RepeatedPlaceholderOnce(t *testing.T) {
	store := kb.NewStore(testutil.SampleFacts())

	facts := ExtractFacts("{PHONE}または{PHONE}へ", store)
	assert.Len(t, facts, 1)
}

func TestTokenize_MixedScripts(t *testing.T) {
	tokens := Tokenize("カットはOK? 10時")

	assert.Contains(t, tokens, "カッ")
	assert.Contains(t, tokens, "ット")
	assert.Contains(t, tokens, "ok")
	assert.Contains(t, tokens, "10")
	// The particle は separates runs and is dropped.
	assert.NotContains(t, tokens, "は")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("!!! ??? 。。。"))
}
