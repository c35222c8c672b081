package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/ports/driven"
)

func TestConfigStore_InterfaceCompliance(t *testing.T) {
	var _ driven.ConfigStore = NewConfigStore()
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("llm.provider", "azure"))
	require.NoError(t, store.Set("llm.max_tokens", int64(800)))
	require.NoError(t, store.Set("llm.temperature", 0.2))
	require.NoError(t, store.Set("nlp.min_word_length", 4))
	require.NoError(t, store.Set("debug", true))

	assert.Equal(t, "azure", store.GetString("llm.provider"))
	assert.Equal(t, 800, store.GetInt("llm.max_tokens"))
	assert.InDelta(t, 0.2, store.GetFloat("llm.temperature"), 1e-9)
	assert.InDelta(t, 4.0, store.GetFloat("nlp.min_word_length"), 1e-9)
	assert.Equal(t, 0, store.GetInt("llm.temperature"))
	assert.True(t, store.GetBool("debug"))
}

func TestConfigStore_MissingAndWrongType(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("llm.provider", 42))

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("llm.provider"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.False(t, store.GetBool("llm.provider"))
}

func TestConfigStore_NoOpPersistence(t *testing.T) {
	store := NewConfigStore()
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("generation.seed", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("generation.seed")
		}()
	}
	wg.Wait()
	_, ok := store.Get("generation.seed")
	assert.True(t, ok)
}

func TestConfigStore_Seed(t *testing.T) {
	base := map[string]any{"llm.provider": "ollama", "matching.threshold": 0.6}
	store := NewConfigStore(base, map[string]any{"matching.threshold": 0.8})

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.InDelta(t, 0.8, store.GetFloat("matching.threshold"), 1e-9)

	require.NoError(t, store.Set("llm.provider", "azure"))
	assert.Equal(t, "ollama", base["llm.provider"], "seed maps are copied")
}
