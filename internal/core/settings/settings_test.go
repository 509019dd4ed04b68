package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("enabled with key", func(t *testing.T) {
		p := StaticProvider{Enabled: true, Key: "secret"}
		assert.True(t, p.AIEnabled(ctx))
		assert.True(t, p.HasAPIKey(ctx))
		assert.Equal(t, "secret", p.APIKey(ctx))
	})

	t.Run("disabled without key", func(t *testing.T) {
		p := StaticProvider{}
		assert.False(t, p.AIEnabled(ctx))
		assert.False(t, p.HasAPIKey(ctx))
		assert.Empty(t, p.APIKey(ctx))
	})

	t.Run("enabled without key", func(t *testing.T) {
		p := StaticProvider{Enabled: true}
		assert.True(t, p.AIEnabled(ctx))
		assert.False(t, p.HasAPIKey(ctx))
	})
}
