package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeIsCanonical(t *testing.T) {
	t.Run("identical state encodes identically", func(t *testing.T) {
		a := map[string]any{"zebra": 1, "alpha": []string{"x", "y"}, "mid": map[string]any{"b": 2, "a": 1}}
		b := map[string]any{"mid": map[string]any{"a": 1, "b": 2}, "alpha": []string{"x", "y"}, "zebra": 1}

		blobA, err := Encode(a)
		require.NoError(t, err)
		blobB, err := Encode(b)
		require.NoError(t, err)
		assert.Equal(t, blobA, blobB)
		assert.Equal(t, Hash(blobA), Hash(blobB))
	})

	t.Run("different state hashes differently", func(t *testing.T) {
		blobA, err := Encode(map[string]any{"step": 1})
		require.NoError(t, err)
		blobB, err := Encode(map[string]any{"step": 2})
		require.NoError(t, err)
		assert.NotEqual(t, Hash(blobA), Hash(blobB))
	})

	t.Run("html is not escaped", func(t *testing.T) {
		blob, err := Encode(map[string]any{"cmd": "a < b && c > d"})
		require.NoError(t, err)
		assert.Contains(t, string(blob), "a < b && c > d")
	})

	t.Run("no trailing newline", func(t *testing.T) {
		blob, err := Encode("x")
		require.NoError(t, err)
		assert.Equal(t, `"x"`, string(blob))
	})
}

func TestHash(t *testing.T) {
	// SHA-256 of the empty string, hex-encoded.
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Hash(nil))
	assert.Len(t, Hash([]byte("state")), 64)
}

func TestStripeIsStablePerEntity(t *testing.T) {
	s := New(nil)
	first := s.stripe("plan", "plan-1")
	again := s.stripe("plan", "plan-1")
	assert.Same(t, first, again)

	// Type and id both participate in stripe selection.
	assert.Same(t, s.stripe("workflow", "wf-1"), s.stripe("workflow", "wf-1"))
}
