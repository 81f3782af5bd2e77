package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTracer(t *testing.T) {
	t.Run("Should build a query tracer", func(t *testing.T) {
		assert.NotNil(t, newTracer())
	})
}
