package kb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/domain"
)

func TestNewStore_DuplicateKeysKeepFirst(t *testing.T) {
	s := NewStore([]domain.KnowledgeFact{
		{Key: "PHONE", Value: "03-1234-5678"},
		{Key: "PHONE", Value: "03-9999-9999"},
		{Key: "", Value: "ignored"},
	})

	v, ok := s.Get("PHONE")
	require.True(t, ok)
	assert.Equal(t, "03-1234-5678", v)
	assert.Equal(t, 1, s.Len())
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(nil)
	_, ok := s.Get("SALON_NAME")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_MissingFileDegradesToEmpty(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.yaml"), zap.NewNop())
	assert.Equal(t, 0, s.Len())
}

func TestLoad_MalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("facts: {not: [valid"), 0o644))

	s := Load(path, zap.NewNop())
	assert.Equal(t, 0, s.Len())
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kb.yaml")
	content := "facts:\n  - key: SALON_NAME\n    value: サロンAI\n  - key: PHONE\n    value: 03-1234-5678\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := Load(path, zap.NewNop())
	require.Equal(t, 2, s.Len())
	name, ok := s.Get("SALON_NAME")
	require.True(t, ok)
	assert.Equal(t, "サロンAI", name)
}
