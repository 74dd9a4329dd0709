// Package catalog holds the immutable plant templates and the questionnaire
// used to recommend them. Catalog entries are never mutated; growing state
// lives on the planted instance, not here.
package catalog

// Style classifies what the user wants out of a plant.
type Style string

const (
	StyleHerbs     Style = "Fresh herbs"
	StyleEdible    Style = "Edible"
	StyleAesthetic Style = "Aesthetic"
	StyleFragrance Style = "Fragrance"
	StyleHobby     Style = "Hobby"
)

// Size is the expected grown size of the plant.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Maintenance is the effort level a plant demands.
type Maintenance string

const (
	MaintenanceVeryLow  Maintenance = "Very low"
	MaintenanceLow      Maintenance = "Low to moderate"
	MaintenanceModerate Maintenance = "Moderate"
	MaintenanceHigh     Maintenance = "High"
)

// Watering is how often a plant needs water.
type Watering string

const (
	WaterEveryDay    Watering = "Every day"
	WaterFewTimes    Watering = "2-3 times a week"
	WaterOnceAWeek   Watering = "Once a week"
	WaterEveryTwoWks Watering = "Every 2 weeks"
	WaterMonthly     Watering = "Monthly"
)

// Budget is the price bracket the user is shopping in.
type Budget string

const (
	BudgetUnder10 Budget = "< $10"
	Budget10to20  Budget = "$10-$20"
	Budget20to50  Budget = "$20-$50"
	BudgetOver50  Budget = "$50+"
)

// Plant is an immutable catalog template.
type Plant struct {
	ID                 string      `yaml:"id" json:"id"`
	Name               string      `yaml:"name" json:"name"`
	Image              string      `yaml:"image" json:"image"`
	Style              Style       `yaml:"style" json:"style"`
	Size               Size        `yaml:"size" json:"size"`
	Maintenance        Maintenance `yaml:"maintenance" json:"maintenance"`
	Watering           Watering    `yaml:"watering" json:"watering"`
	SuccessRate        int         `yaml:"successRate" json:"successRate"`
	SunlightHours      float64     `yaml:"sunlightHours" json:"sunlightHours"`
	TimeToFirstHarvest string      `yaml:"timeToFirstHarvest" json:"timeToFirstHarvest"`
	Description        string      `yaml:"description" json:"description"`
	Price              float64     `yaml:"price" json:"price"`
}

// BudgetFor returns the bracket a price falls into.
func BudgetFor(price float64) Budget {
	switch {
	case price < 10:
		return BudgetUnder10
	case price <= 20:
		return Budget10to20
	case price <= 50:
		return Budget20to50
	default:
		return BudgetOver50
	}
}
