package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	t.Run("zero derived key", func(t *testing.T) {
		b := []byte("0123456789abcdef0123456789abcdef")
		Zero(b)
		assert.Equal(t, make([]byte, 32), b)
	})

	t.Run("zero nil slice", func(t *testing.T) {
		var b []byte
		assert.NotPanics(t, func() { Zero(b) })
	})
}
