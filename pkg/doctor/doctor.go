// Package doctor is the Plant Doctor capability: a diagnosis provider
// interface with a randomized mock implementation returning canned results.
// Randomness is injected so tests can pin either outcome.
package doctor

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/fluorish/fluorish/pkg/care"
	"github.com/fluorish/fluorish/pkg/catalog"
)

// HealthStatus is the top-line diagnosis verdict.
type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// FactorStatus grades a single observed factor.
type FactorStatus string

const (
	FactorGood     FactorStatus = "good"
	FactorWarning  FactorStatus = "warning"
	FactorCritical FactorStatus = "critical"
)

// Factor is one observed aspect of the plant's condition.
type Factor struct {
	Name        string       `json:"name"`
	Status      FactorStatus `json:"status"`
	Description string       `json:"description"`
}

// CareOption is a recommended treatment attached to an unhealthy diagnosis.
type CareOption struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Duration    string `json:"duration"`
}

// Recommendation converts a care option into a schedulable routine entry.
func (c CareOption) Recommendation() care.Recommendation {
	return care.Recommendation{ID: c.ID, Title: c.Title}
}

// Result is a full diagnosis.
type Result struct {
	Status      HealthStatus `json:"status"`
	Summary     string       `json:"summary"`
	Image       string       `json:"image,omitempty"`
	Factors     []Factor     `json:"factors"`
	CareOptions []CareOption `json:"careOptions,omitempty"`
}

// Provider produces a diagnosis for a plant from a captured image reference.
type Provider interface {
	Diagnose(plant catalog.Plant, imageRef string) Result
}

// ErrCameraUnavailable is the simulated camera/media access failure. The UI
// surfaces it as a blocking alert pointing at the upload fallback.
var ErrCameraUnavailable = errors.New("camera unavailable")

// Capture simulates grabbing a photo of the plant. Implementations are
// swappable so the failure alert path can be exercised.
type Capture func(plant catalog.Plant) (imageRef string, err error)

// MockCapture always succeeds with a synthetic image reference.
func MockCapture(plant catalog.Plant) (string, error) {
	return "capture:" + plant.ID, nil
}

// FailingCapture always reports the camera as unavailable, driving the
// upload-fallback path.
func FailingCapture(catalog.Plant) (string, error) {
	return "", ErrCameraUnavailable
}

// MockProvider returns randomized canned diagnoses, a coin flip between
// healthy and unhealthy.
type MockProvider struct {
	rng *rand.Rand
}

// NewMockProvider seeds a mock diagnosis provider.
func NewMockProvider(rng *rand.Rand) *MockProvider {
	return &MockProvider{rng: rng}
}

func (m *MockProvider) Diagnose(plant catalog.Plant, imageRef string) Result {
	if m.rng.Intn(2) == 0 {
		return healthyResult(plant, imageRef)
	}
	return unhealthyResult(plant, imageRef)
}

func healthyResult(plant catalog.Plant, imageRef string) Result {
	return Result{
		Status: Healthy,
		Summary: fmt.Sprintf("Your %s appears to be in excellent health! The leaves show vibrant color, "+
			"proper structure, and no visible signs of disease or pest infestation.", plant.Name),
		Image: imageRef,
		Factors: []Factor{
			{Name: "Leaf Color", Status: FactorGood, Description: "Leaves display healthy green coloration with no discoloration or yellowing."},
			{Name: "Leaf Structure", Status: FactorGood, Description: "Leaves are properly formed with no signs of wilting or deformation."},
			{Name: "Stem Health", Status: FactorGood, Description: "Stems appear strong and healthy with no visible damage."},
			{Name: "Pest Presence", Status: FactorGood, Description: "No visible signs of pests or insect damage detected."},
		},
	}
}

func unhealthyResult(plant catalog.Plant, imageRef string) Result {
	return Result{
		Status: Unhealthy,
		Summary: fmt.Sprintf("Your %s shows signs of health issues that need attention. We've identified "+
			"several factors that may be affecting your plant's growth and vitality.", plant.Name),
		Image: imageRef,
		Factors: []Factor{
			{Name: "Leaf Color", Status: FactorWarning, Description: "Some discoloration detected. May need nutrient adjustment."},
			{Name: "Leaf Discoloration", Status: FactorWarning, Description: "Some leaves show signs of yellowing, which may indicate nutrient deficiency or overwatering."},
			{Name: "Pest Infestation", Status: FactorCritical, Description: "Visible signs of pest activity detected. Immediate treatment recommended."},
			{Name: "Overall Condition", Status: FactorWarning, Description: "Plant shows signs of stress but can recover with proper care."},
		},
		CareOptions: []CareOption{
			{
				ID:          "care-1",
				Title:       "Apply Neem Oil Treatment",
				Description: "Spray neem oil solution on leaves to treat pest infestation. Apply in the evening to avoid sunburn.",
				Frequency:   "Every 3 days",
				Duration:    "2 weeks",
			},
			{
				ID:          "care-2",
				Title:       "Adjust Watering Schedule",
				Description: "Reduce watering frequency to prevent root rot. Check soil moisture before watering.",
				Frequency:   "As needed",
				Duration:    "1 week",
			},
			{
				ID:          "care-3",
				Title:       "Apply Balanced Fertilizer",
				Description: "Feed plant with balanced NPK fertilizer to address nutrient deficiency.",
				Frequency:   "Once a week",
				Duration:    "3 weeks",
			},
		},
	}
}

// FixedProvider always returns the same result; used by tests and demos.
type FixedProvider struct {
	Result Result
}

func (f FixedProvider) Diagnose(catalog.Plant, string) Result {
	return f.Result
}
