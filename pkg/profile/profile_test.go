package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluorish/fluorish/pkg/kvstore"
)

func TestLoginPersistsSession(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewSession(kv)

	assert.False(t, s.LoggedIn())

	u, err := s.Login("Continue with Google")
	require.NoError(t, err)
	assert.Equal(t, MockUser.Name, u.Name)
	assert.True(t, s.LoggedIn())

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, MockUser.ID, cur.ID)

	// A fresh session over the same storage sees the login.
	s2 := NewSession(kv)
	assert.True(t, s2.LoggedIn())
}

func TestLogout(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewSession(kv)
	_, err := s.Login("Continue with Email")
	require.NoError(t, err)

	s.Logout()
	assert.False(t, s.LoggedIn())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestCurrentDiscardsCorruptProfile(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.Set("user", "{not json")
	s := NewSession(kv)

	_, ok := s.Current()
	assert.False(t, ok)

	// The corrupt record is gone.
	_, present := kv.Get("user")
	assert.False(t, present)
}

func TestSimulatedFetch(t *testing.T) {
	s := NewSession(kvstore.NewMemory())

	u, err := s.SimulatedFetch()
	require.NoError(t, err)
	assert.Equal(t, MockUser.Name, u.Name)

	s.FetchFails = true
	_, err = s.SimulatedFetch()
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestApplyOnboarding(t *testing.T) {
	kv := kvstore.NewMemory()
	s := NewSession(kv)
	_, err := s.Login("Continue with Google")
	require.NoError(t, err)

	require.NoError(t, s.ApplyOnboarding("Pune", 6, 8, 120))

	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Pune", u.Location)
	assert.Equal(t, 6.0, u.SunlightHoursPerDay)
	assert.Contains(t, u.HomeZone, "Pune")
	assert.Contains(t, u.HomeZone, "120 sq ft")
	assert.Equal(t, "6.0 hrs / day", u.DaylightHours)
}

func TestApplyOnboardingWithoutLogin(t *testing.T) {
	s := NewSession(kvstore.NewMemory())

	// Falls back to the canned profile as the base.
	require.NoError(t, s.ApplyOnboarding("Delhi", 5, 7, 80))
	u, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, MockUser.Name, u.Name)
	assert.Equal(t, "Delhi", u.Location)
}
