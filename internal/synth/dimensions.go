package synth

import (
	"math/rand"

	"github.com/loftlist/seedkit/internal/domain"
)

const dimensionUnit = "cm"

// axisRange is an inclusive integer range for one dimension axis.
type axisRange struct {
	min, max int
}

func (r axisRange) draw(rng *rand.Rand) int {
	return r.min + rng.Intn(r.max-r.min+1)
}

// boxRanges are the per-category length/width/height bounds in cm.
var boxRanges = map[domain.Category][3]axisRange{
	domain.CategorySofa:        {{160, 280}, {80, 110}, {70, 100}},
	domain.CategoryArmchair:    {{60, 100}, {60, 95}, {70, 110}},
	domain.CategoryDiningTable: {{120, 240}, {70, 110}, {72, 78}},
	domain.CategoryDesk:        {{100, 180}, {50, 80}, {70, 78}},
	domain.CategoryOfficeChair: {{55, 75}, {55, 75}, {100, 130}},
	domain.CategoryBed:         {{190, 220}, {90, 200}, {30, 120}},
	domain.CategoryWardrobe:    {{100, 250}, {50, 70}, {180, 240}},
	domain.CategoryBookshelf:   {{60, 120}, {25, 45}, {120, 220}},
	domain.CategoryTVStand:     {{100, 200}, {35, 50}, {40, 60}},
}

var genericBox = [3]axisRange{{50, 200}, {40, 100}, {40, 200}}

// roundTableRanges cover round coffee tables: diameter and height only.
var roundTableDiameter = axisRange{60, 110}
var roundTableHeight = axisRange{35, 50}

// makeDimensions draws category-appropriate dimensions. Coffee tables are
// round half the time and then carry a diameter instead of length/width;
// every other category gets a length/width/height box, with a generic
// fallback for unmodeled categories.
func makeDimensions(rng *rand.Rand, category domain.Category) domain.Dimensions {
	if category == domain.CategoryCoffeeTable {
		if rng.Float64() < 0.5 {
			return domain.Dimensions{
				Diameter: roundTableDiameter.draw(rng),
				Height:   roundTableHeight.draw(rng),
				Unit:     dimensionUnit,
			}
		}
		return domain.Dimensions{
			Length: axisRange{60, 130}.draw(rng),
			Width:  axisRange{40, 80}.draw(rng),
			Height: roundTableHeight.draw(rng),
			Unit:   dimensionUnit,
		}
	}

	box, ok := boxRanges[category]
	if !ok {
		box = genericBox
	}
	return domain.Dimensions{
		Length: box[0].draw(rng),
		Width:  box[1].draw(rng),
		Height: box[2].draw(rng),
		Unit:   dimensionUnit,
	}
}
