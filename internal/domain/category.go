// Package domain contains the core entities shared by the LoftList seed pipeline:
// furniture categories, image records, acquisition progress, and listings.
package domain

// Category identifies one of the fixed furniture categories used to
// partition both image search and listing synthesis.
type Category string

// The fixed category set. Order matters: acquisition iterates categories
// in this order and resume checkpoints reference positions in it.
const (
	CategorySofa        Category = "sofa"
	CategoryArmchair    Category = "armchair"
	CategoryDiningTable Category = "dining-table"
	CategoryDesk        Category = "desk"
	CategoryOfficeChair Category = "office-chair"
	CategoryBed         Category = "bed"
	CategoryWardrobe    Category = "wardrobe"
	CategoryBookshelf   Category = "bookshelf"
	CategoryCoffeeTable Category = "coffee-table"
	CategoryTVStand     Category = "tv-stand"
)

// CategorySpec describes how one category is acquired: the search queries
// issued against the photo providers and the number of images to collect.
type CategorySpec struct {
	Category Category
	Queries  []string
	Target   int
}

// categorySpecs is the build-time acquisition plan. Immutable during a run.
var categorySpecs = []CategorySpec{
	{CategorySofa, []string{"modern sofa", "leather couch", "fabric sofa living room"}, 80},
	{CategoryArmchair, []string{"armchair", "lounge chair interior"}, 80},
	{CategoryDiningTable, []string{"dining table", "wooden dining table chairs"}, 80},
	{CategoryDesk, []string{"office desk", "wooden desk workspace"}, 80},
	{CategoryOfficeChair, []string{"office chair", "ergonomic desk chair"}, 80},
	{CategoryBed, []string{"bed frame bedroom", "double bed interior"}, 80},
	{CategoryWardrobe, []string{"wardrobe closet", "wooden wardrobe bedroom"}, 80},
	{CategoryBookshelf, []string{"bookshelf", "bookcase living room"}, 80},
	{CategoryCoffeeTable, []string{"coffee table", "coffee table living room"}, 80},
	{CategoryTVStand, []string{"tv stand", "media console living room"}, 80},
}

// Specs returns the ordered acquisition plan. Callers must not mutate the
// returned slice; it is shared.
func Specs() []CategorySpec {
	return categorySpecs
}

// Categories returns all category names in acquisition order.
func Categories() []Category {
	cats := make([]Category, len(categorySpecs))
	for i, spec := range categorySpecs {
		cats[i] = spec.Category
	}
	return cats
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, spec := range categorySpecs {
		if spec.Category == c {
			return true
		}
	}
	return false
}

// categoryMaterials maps each category to its plausible material vocabulary.
// Listings draw 1-2 materials from their category's set.
var categoryMaterials = map[Category][]string{
	CategorySofa:        {"fabric", "leather", "velvet", "linen", "microfiber"},
	CategoryArmchair:    {"fabric", "leather", "velvet", "rattan", "suede"},
	CategoryDiningTable: {"oak", "walnut", "pine", "glass", "marble"},
	CategoryDesk:        {"oak", "walnut", "mdf", "metal", "bamboo"},
	CategoryOfficeChair: {"mesh", "leather", "fabric", "aluminium"},
	CategoryBed:         {"oak", "pine", "upholstered fabric", "metal", "walnut"},
	CategoryWardrobe:    {"oak", "pine", "mdf", "walnut", "mirrored glass"},
	CategoryBookshelf:   {"oak", "pine", "mdf", "metal", "walnut"},
	CategoryCoffeeTable: {"oak", "glass", "marble", "walnut", "metal"},
	CategoryTVStand:     {"oak", "walnut", "mdf", "glass", "metal"},
}

// Materials returns the material vocabulary for a category. Categories
// outside the fixed set fall back to a generic wood palette.
func (c Category) Materials() []string {
	if m, ok := categoryMaterials[c]; ok {
		return m
	}
	return []string{"oak", "pine", "mdf"}
}
