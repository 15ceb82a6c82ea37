package domain

import "time"

// Condition grades a listing's wear state.
type Condition string

const (
	ConditionNew       Condition = "new"
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
)

// PriceMultiplier scales a category's base price range for the condition.
func (c Condition) PriceMultiplier() float64 {
	switch c {
	case ConditionNew:
		return 1.00
	case ConditionExcellent:
		return 0.85
	case ConditionGood:
		return 0.65
	case ConditionFair:
		return 0.45
	default:
		return 1.00
	}
}

// Cities are the regional markets listings are assigned to.
var Cities = []string{
	"Berlin", "Hamburg", "Munich", "Cologne",
	"Frankfurt", "Stuttgart", "Leipzig", "Dresden",
}

// Currency is the fixed currency for all listing prices.
const Currency = "EUR"

// Dimensions holds a listing's physical measurements. Which fields are
// populated depends on the category; round items carry Diameter instead
// of Length/Width.
type Dimensions struct {
	Length   int    `json:"length,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Diameter int    `json:"diameter,omitempty"`
	Unit     string `json:"unit"`
}

// Listing is one synthesized catalog entry, ready for bulk-loading into
// the marketplace database.
type Listing struct {
	ID              string     `json:"id" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	Slug            string     `json:"slug" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	PriceMinorUnits int        `json:"priceMinorUnits" validate:"gt=0"`
	Currency        string     `json:"currency" validate:"required"`
	City            string     `json:"city" validate:"required"`
	Condition       Condition  `json:"condition" validate:"required,oneof=new excellent good fair"`
	Materials       []string   `json:"materials" validate:"min=1"`
	Dimensions      Dimensions `json:"dimensions"`
	Images          []string   `json:"images" validate:"min=1,max=5"`
	Category        Category   `json:"category" validate:"required"`
	Tags            []string   `json:"tags"`
	Stock           int        `json:"stock" validate:"gt=0"`
	Featured        bool       `json:"featured"`
	CreatedAt       time.Time  `json:"createdAt"`
}
