package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arivera-dev/inventario/internal/model"
)

func TestRowAccessors(t *testing.T) {
	now := time.Now()
	row := model.Row{
		"name":       "Leche",
		"quantity":   int64(5),
		"count":      int32(3),
		"ratio":      0.5,
		"sale_price": 18.5,
		"expires":    now,
	}

	assert.Equal(t, "Leche", row.Str("name"))
	assert.Equal(t, "", row.Str("missing"))
	assert.Equal(t, "", row.Str("quantity"))

	assert.Equal(t, 5, row.Int("quantity"))
	assert.Equal(t, 3, row.Int("count"))
	assert.Equal(t, 0, row.Int("ratio"))
	assert.Equal(t, 0, row.Int("missing"))

	assert.Equal(t, 18.5, row.Float("sale_price"))
	assert.Equal(t, 5.0, row.Float("quantity"))
	assert.Equal(t, 0.0, row.Float("missing"))

	got, ok := row.Time("expires")
	assert.True(t, ok)
	assert.Equal(t, now, got)

	_, ok = row.Time("name")
	assert.False(t, ok)
}
