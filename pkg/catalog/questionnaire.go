package catalog

import "sort"

// Preferences holds the questionnaire answers. A nil field means the question
// has not been answered yet.
type Preferences struct {
	Style       *Style
	Size        *Size
	Maintenance *Maintenance
	Watering    *Watering
	Budget      *Budget
}

// Complete reports whether every question has an answer.
func (p Preferences) Complete() bool {
	return p.Style != nil && p.Size != nil && p.Maintenance != nil &&
		p.Watering != nil && p.Budget != nil
}

// Question is one step of the guided questionnaire.
type Question struct {
	Key     string
	Prompt  string
	Options []string
}

// Questions returns the five questionnaire steps in presentation order.
func Questions() []Question {
	return []Question{
		{
			Key:    "style",
			Prompt: "Select a plant style?",
			Options: []string{
				string(StyleHerbs), string(StyleEdible), string(StyleAesthetic),
				string(StyleFragrance), string(StyleHobby),
			},
		},
		{
			Key:     "size",
			Prompt:  "What plant size do you prefer?",
			Options: []string{string(SizeSmall), string(SizeMedium), string(SizeLarge)},
		},
		{
			Key:    "maintenance",
			Prompt: "How much effort are you comfortable putting in?",
			Options: []string{
				string(MaintenanceVeryLow), string(MaintenanceLow),
				string(MaintenanceModerate), string(MaintenanceHigh),
			},
		},
		{
			Key:    "watering",
			Prompt: "How often can you realistically water this plant?",
			Options: []string{
				string(WaterEveryDay), string(WaterFewTimes), string(WaterOnceAWeek),
				string(WaterEveryTwoWks), string(WaterMonthly),
			},
		},
		{
			Key:    "budget",
			Prompt: "What's your budget?",
			Options: []string{
				string(BudgetUnder10), string(Budget10to20),
				string(Budget20to50), string(BudgetOver50),
			},
		},
	}
}

// Answer records the option chosen for a question key.
func (p *Preferences) Answer(key, option string) {
	switch key {
	case "style":
		v := Style(option)
		p.Style = &v
	case "size":
		v := Size(option)
		p.Size = &v
	case "maintenance":
		v := Maintenance(option)
		p.Maintenance = &v
	case "watering":
		v := Watering(option)
		p.Watering = &v
	case "budget":
		v := Budget(option)
		p.Budget = &v
	}
}

// Clear forgets the answer for a question key, for back-navigation.
func (p *Preferences) Clear(key string) {
	switch key {
	case "style":
		p.Style = nil
	case "size":
		p.Size = nil
	case "maintenance":
		p.Maintenance = nil
	case "watering":
		p.Watering = nil
	case "budget":
		p.Budget = nil
	}
}

// Recommend ranks the given plants against the preferences. Every plant gets
// a match score (one point per matching attribute) and the list comes back
// sorted best-first, score ties broken by success rate. The result is never
// empty as long as the input isn't: a weak match beats no recommendation.
func Recommend(plants []Plant, prefs Preferences) []Plant {
	type scored struct {
		plant Plant
		score int
	}
	ranked := make([]scored, 0, len(plants))
	for _, p := range plants {
		s := 0
		if prefs.Style != nil && p.Style == *prefs.Style {
			s += 2 // style is the strongest signal of intent
		}
		if prefs.Size != nil && p.Size == *prefs.Size {
			s++
		}
		if prefs.Maintenance != nil && p.Maintenance == *prefs.Maintenance {
			s++
		}
		if prefs.Watering != nil && p.Watering == *prefs.Watering {
			s++
		}
		if prefs.Budget != nil && BudgetFor(p.Price) == *prefs.Budget {
			s++
		}
		ranked = append(ranked, scored{plant: p, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].plant.SuccessRate > ranked[j].plant.SuccessRate
	})

	out := make([]Plant, len(ranked))
	for i, r := range ranked {
		out[i] = r.plant
	}
	return out
}
