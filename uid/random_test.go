package uid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomString(t *testing.T) {
	t.Run("returns requested length", func(t *testing.T) {
		for _, n := range []int{1, 5, 7, 10, 32, 64, 1000} {
			assert.Len(t, RandomString(n), n)
		}
	})

	t.Run("zero and negative lengths yield empty string", func(t *testing.T) {
		assert.Equal(t, "", RandomString(0))
		assert.Equal(t, "", RandomString(-1))
	})

	t.Run("uses only full charset characters", func(t *testing.T) {
		for _, c := range RandomString(500) {
			assert.True(t, strings.ContainsRune(FullCharset, c),
				"unexpected character %c", c)
		}
	})

	t.Run("produces varied output", func(t *testing.T) {
		// Two independent 16-character draws colliding would mean the
		// random source is broken.
		assert.NotEqual(t, RandomString(16), RandomString(16))
	})
}

func TestHumanRandomString(t *testing.T) {
	t.Run("returns requested length", func(t *testing.T) {
		for _, n := range []int{0, 1, 8, 20, 100} {
			assert.Len(t, HumanRandomString(n), n)
		}
	})

	t.Run("avoids confusable characters", func(t *testing.T) {
		s := HumanRandomString(1000)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(HumanCharset, c),
				"unexpected character %c", c)
			assert.False(t, strings.ContainsRune("0Oo1IilL", c),
				"confusable character %c leaked into output", c)
		}
	})

	t.Run("produces varied output", func(t *testing.T) {
		assert.NotEqual(t, HumanRandomString(16), HumanRandomString(16))
	})
}

func TestRandomNumber(t *testing.T) {
	s := RandomNumber(200)
	assert.Len(t, s, 200)
	for _, c := range s {
		assert.True(t, c >= '0' && c <= '9', "non-digit character %c", c)
	}

	assert.Equal(t, "", RandomNumber(0))
}

func BenchmarkRandomString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RandomString(8)
	}
}
