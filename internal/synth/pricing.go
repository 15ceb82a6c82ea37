package synth

import (
	"math"
	"math/rand"

	"github.com/loftlist/seedkit/internal/domain"
)

// priceRange is a category's base price band in minor units (euro cents)
// for a new item. Condition multipliers scale it down.
type priceRange struct {
	min, max int
}

var categoryPrices = map[domain.Category]priceRange{
	domain.CategorySofa:        {45000, 250000},
	domain.CategoryArmchair:    {15000, 90000},
	domain.CategoryDiningTable: {30000, 200000},
	domain.CategoryDesk:        {20000, 120000},
	domain.CategoryOfficeChair: {10000, 80000},
	domain.CategoryBed:         {40000, 220000},
	domain.CategoryWardrobe:    {35000, 180000},
	domain.CategoryBookshelf:   {15000, 100000},
	domain.CategoryCoffeeTable: {10000, 80000},
	domain.CategoryTVStand:     {15000, 90000},
}

var genericPrices = priceRange{10000, 100000}

// basePrices returns the category's base band, falling back to a generic
// band for categories outside the modeled set.
func basePrices(category domain.Category) priceRange {
	if r, ok := categoryPrices[category]; ok {
		return r
	}
	return genericPrices
}

// makePrice draws a base price uniformly from the category band, scales
// it by the condition multiplier, and rounds to the nearest 1000 minor
// units (10 euro steps). The result is always a positive multiple of 1000.
func makePrice(rng *rand.Rand, category domain.Category, condition domain.Condition) int {
	band := basePrices(category)
	base := band.min + rng.Intn(band.max-band.min+1)

	scaled := float64(base) * condition.PriceMultiplier()
	price := int(math.Round(scaled/1000)) * 1000
	if price < 1000 {
		price = 1000
	}
	return price
}
