package seed_test

import (
	"testing"

	"glowmart/internal/seed"

	"github.com/stretchr/testify/assert"
)

func TestSampleProducts(t *testing.T) {
	products := seed.SampleProducts()

	assert.Len(t, products, 12)

	seenIDs := map[string]bool{}
	categories := map[string]int{}
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.False(t, seenIDs[p.ID], "product IDs must be unique")
		seenIDs[p.ID] = true

		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.True(t, p.InStock)
		assert.NotNil(t, p.Images)

		if p.OfferPrice != nil {
			assert.Less(t, *p.OfferPrice, p.Price)
		}

		categories[p.Category]++
	}

	//skincare/haircare/bodycareの3カテゴリ構成
	assert.Equal(t, 3, len(categories))
	assert.Contains(t, categories, "skincare")
	assert.Contains(t, categories, "haircare")
	assert.Contains(t, categories, "bodycare")
}

// 呼び出しごとにIDは振り直される
func TestSampleProducts_FreshIDs(t *testing.T) {
	first := seed.SampleProducts()
	second := seed.SampleProducts()

	assert.NotEqual(t, first[0].ID, second[0].ID)
}
