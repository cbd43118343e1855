package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Complete(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		p := Product{Name: "Lamp", Price: 12.5, Description: "Desk lamp", Category: "Home"}
		assert.NoError(t, p.Complete())
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		p := Product{Name: "Sample", Description: "Free sample", Category: "Promo"}
		assert.NoError(t, p.Complete())
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		p := Product{Name: "  ", Category: "Home"}
		err := p.Complete()
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "name, description")
		assert.NotContains(t, err.Error(), "category")
	})

	t.Run("non-finite price is rejected", func(t *testing.T) {
		for _, price := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			p := Product{Name: "Lamp", Price: price, Description: "Desk lamp", Category: "Home"}
			err := p.Complete()
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), "finite")
		}
	})
}

func TestProduct_OwnedBy(t *testing.T) {
	p := Product{OwnerEmail: "a@x.com"}
	assert.True(t, p.OwnedBy("a@x.com"))
	assert.False(t, p.OwnedBy("A@x.com"))
	assert.False(t, p.OwnedBy(""))
}
