// Package profile manages the mock user session: a canned profile, a
// persisted login flag, and a simulated fetch with an injectable failure
// hook so the retry path can be exercised.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fluorish/fluorish/pkg/kvstore"
)

const (
	userKey     = "user"
	loggedInKey = "isLoggedIn"
)

// ErrFetchFailed is the simulated network failure; the UI surfaces it as a
// retry prompt.
var ErrFetchFailed = errors.New("unable to load your profile")

// User is the profile shown on the dashboard, combining a display summary
// with the structured onboarding answers behind it.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`

	// Human-readable summary lines.
	HomeZone      string `json:"homeZone"`
	DaylightHours string `json:"daylightHours"`

	// Structured onboarding data.
	Location            string  `json:"location"`
	SunlightHoursPerDay float64 `json:"sunlightHoursPerDay"`
	SpaceHeightFt       float64 `json:"spaceHeightFt"`
	SpaceAreaSqFt       float64 `json:"spaceAreaSqFt"`
}

// MockUser is the canned profile returned by the simulated backend.
var MockUser = User{
	ID:                  "user-001",
	Name:                "Jane Doe",
	Avatar:              "https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?auto=format&fit=crop&w=200&q=80",
	HomeZone:            "Mumbai · Balcony garden (65 sq ft, 6 ft height)",
	DaylightHours:       "4.5 hrs / day",
	Location:            "Mumbai, India",
	SunlightHoursPerDay: 4.5,
	SpaceHeightFt:       6,
	SpaceAreaSqFt:       65,
}

// Session persists the current user and login state through the KV store.
type Session struct {
	kv kvstore.KV

	// FetchFails, when set, makes the next SimulatedFetch return
	// ErrFetchFailed. Tests and the demo error path use it.
	FetchFails bool
}

// NewSession wires a session to its storage.
func NewSession(kv kvstore.KV) *Session {
	return &Session{kv: kv}
}

// Current returns the stored user, if any. A malformed stored profile is
// discarded and treated as signed out.
func (s *Session) Current() (*User, bool) {
	raw, ok := s.kv.Get(userKey)
	if !ok || raw == "" {
		return nil, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.kv.Remove(userKey)
		return nil, false
	}
	return &u, true
}

// LoggedIn reports the persisted login flag.
func (s *Session) LoggedIn() bool {
	raw, _ := s.kv.Get(loggedInKey)
	return raw == "true"
}

// SetUser stores the user and marks the session logged in.
func (s *Session) SetUser(u User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return err
	}
	return s.kv.Set(loggedInKey, "true")
}

// Login completes a mock sign-in with the given provider. The caller is
// responsible for the simulated delay; this just persists the session.
func (s *Session) Login(provider string) (*User, error) {
	u := MockUser
	if err := s.SetUser(u); err != nil {
		return nil, fmt.Errorf("signing in with %s: %w", provider, err)
	}
	return &u, nil
}

// Logout clears the stored user and login flag.
func (s *Session) Logout() {
	s.kv.Remove(userKey)
	s.kv.Set(loggedInKey, "false")
}

// SimulatedFetch stands in for the backend profile fetch. It returns the
// canned user, or ErrFetchFailed when the failure hook is set.
func (s *Session) SimulatedFetch() (*User, error) {
	if s.FetchFails {
		return nil, ErrFetchFailed
	}
	u := MockUser
	return &u, nil
}

// ApplyOnboarding folds the onboarding answers into the stored profile.
func (s *Session) ApplyOnboarding(location string, sunlightHrs, heightFt, areaSqFt float64) error {
	u, ok := s.Current()
	if !ok {
		mock := MockUser
		u = &mock
	}
	u.Location = location
	u.SunlightHoursPerDay = sunlightHrs
	u.SpaceHeightFt = heightFt
	u.SpaceAreaSqFt = areaSqFt
	u.HomeZone = fmt.Sprintf("%s · Balcony garden (%.0f sq ft, %.0f ft height)", location, areaSqFt, heightFt)
	u.DaylightHours = fmt.Sprintf("%.1f hrs / day", sunlightHrs)
	return s.SetUser(*u)
}
