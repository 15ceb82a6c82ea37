package synth

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/loftlist/seedkit/internal/domain"
)

// Title vocabulary. Adjectives and styles are shared; numeric attributes
// are category-specific (seat counts for sofas, screen sizes for TV
// stands, and so on).

var adjectives = []string{
	"Cozy", "Elegant", "Modern", "Vintage", "Minimalist",
	"Spacious", "Handcrafted", "Timeless", "Sleek", "Charming",
}

var styles = []string{
	"Mid-Century", "Scandinavian", "Industrial", "Bohemian",
	"Contemporary", "Rustic", "Art Deco",
}

// titleTemplates holds per-category title patterns. Placeholders:
//
//	{adjective} {style} {material} — drawn from the vocabulary above
//	{seats}  — sofa seat count
//	{size}   — TV size in inches (tv-stand)
//	{shelves} — shelf count (bookshelf)
var titleTemplates = map[domain.Category][]string{
	domain.CategorySofa: {
		"{adjective} {seats}-Seater {material} Sofa",
		"{style} {material} Sofa",
		"{adjective} {style} Couch",
	},
	domain.CategoryArmchair: {
		"{adjective} {material} Armchair",
		"{style} Lounge Chair",
		"{adjective} {style} Reading Chair",
	},
	domain.CategoryDiningTable: {
		"{adjective} {material} Dining Table",
		"{style} Dining Table in {material}",
	},
	domain.CategoryDesk: {
		"{adjective} {material} Desk",
		"{style} Writing Desk",
		"{adjective} {style} Home Office Desk",
	},
	domain.CategoryOfficeChair: {
		"{adjective} {material} Office Chair",
		"Ergonomic {style} Desk Chair",
	},
	domain.CategoryBed: {
		"{adjective} {material} Bed Frame",
		"{style} Bed in {material}",
	},
	domain.CategoryWardrobe: {
		"{adjective} {material} Wardrobe",
		"{style} Wardrobe with Sliding Doors",
	},
	domain.CategoryBookshelf: {
		"{adjective} {material} Bookshelf",
		"{style} Bookcase with {shelves} Shelves",
	},
	domain.CategoryCoffeeTable: {
		"{adjective} {material} Coffee Table",
		"{style} Coffee Table in {material}",
	},
	domain.CategoryTVStand: {
		"{adjective} {material} TV Stand",
		"{style} Media Console for {size}\" TVs",
	},
}

var genericTitleTemplates = []string{
	"{adjective} {material} Furniture Piece",
	"{style} {material} Furniture",
}

// makeTitle renders one randomly chosen template for the category,
// substituting every placeholder with a random filler.
func makeTitle(rng *rand.Rand, category domain.Category, material string) string {
	templates, ok := titleTemplates[category]
	if !ok {
		templates = genericTitleTemplates
	}
	title := templates[rng.Intn(len(templates))]

	replacer := strings.NewReplacer(
		"{adjective}", adjectives[rng.Intn(len(adjectives))],
		"{style}", styles[rng.Intn(len(styles))],
		"{material}", titleCase(material),
		"{seats}", strconv.Itoa(2+rng.Intn(3)),      // 2-4 seats
		"{size}", strconv.Itoa(40+5*rng.Intn(8)),    // 40-75 inches
		"{shelves}", strconv.Itoa(3+rng.Intn(4)),    // 3-6 shelves
	)
	return replacer.Replace(title)
}

// titleCase upper-cases the first letter of each word for display in titles.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// pickMaterials draws 1-2 distinct materials from the category's set.
func pickMaterials(rng *rand.Rand, category domain.Category) []string {
	pool := category.Materials()
	count := 1 + rng.Intn(2)
	if count > len(pool) {
		count = len(pool)
	}

	picked := make([]string, 0, count)
	indices := rng.Perm(len(pool))[:count]
	for _, i := range indices {
		picked = append(picked, pool[i])
	}
	return picked
}

// drawCondition samples the fixed condition distribution:
// new 60%, excellent 25%, good 10%, fair 5%.
func drawCondition(rng *rand.Rand) domain.Condition {
	roll := rng.Float64()
	switch {
	case roll < 0.60:
		return domain.ConditionNew
	case roll < 0.85:
		return domain.ConditionExcellent
	case roll < 0.95:
		return domain.ConditionGood
	default:
		return domain.ConditionFair
	}
}
