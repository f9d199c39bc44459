package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAvailability(t *testing.T) {
	t.Run("Boundaries", func(t *testing.T) {
		assert.Equal(t, domain.SoldOut, domain.ClassifyAvailability(0))
		assert.Equal(t, domain.Available, domain.ClassifyAvailability(1))
	})

	t.Run("NegativeStockIsSoldOut", func(t *testing.T) {
		assert.Equal(t, domain.SoldOut, domain.ClassifyAvailability(-1))
		assert.Equal(t, domain.SoldOut, domain.ClassifyAvailability(-100))
	})

	t.Run("Monotonic", func(t *testing.T) {
		prev := domain.ClassifyAvailability(-5)
		flips := 0
		for stock := -4; stock <= 200; stock++ {
			cur := domain.ClassifyAvailability(stock)
			if cur != prev {
				flips++
				assert.Equal(t, domain.SoldOut, prev)
				assert.Equal(t, domain.Available, cur)
				assert.Equal(t, 1, stock)
			}
			prev = cur
		}
		assert.Equal(t, 1, flips)
	})
}

func TestAvailabilityBadge(t *testing.T) {
	for stock := -3; stock <= 3; stock++ {
		badge := domain.ClassifyAvailability(stock).Badge()
		if stock > 0 {
			assert.Empty(t, badge, "stock=%d", stock)
		} else {
			assert.Equal(t, "Sold Out", badge, "stock=%d", stock)
		}
	}
}
