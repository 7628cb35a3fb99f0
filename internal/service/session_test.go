package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/plerr"
)

func sessionStartRequest(t *testing.T, profileID string) *types.SessionStartRequest {
	return &types.SessionStartRequest{
		Profile:      newProfile(profileID),
		Locations:    decode[model.Locations](t, locationsFixture),
		Bots:         decode[model.Bots](t, botsFixture),
		Quests:       questFixture(),
		HideoutAreas: hideoutFixture(),
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession(newTestConfig(t, nil))
	s.now = fixedNow

	captured, err := s.Capture(sessionStartRequest(t, "p1"))
	require.NoError(t, err)
	assert.Equal(t, "p1", captured.ProfileID)
	assert.Equal(t, testNow, captured.CapturedAt)
	assert.Len(t, captured.Fingerprint, 16)

	got, err := s.Get("p1")
	require.NoError(t, err)
	assert.Same(t, captured, got)

	s.Delete("p1")
	_, err = s.Get("p1")
	var perr *plerr.PityError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, plerr.CodeSessionNotFound, perr.ErrorCode)
	assert.Equal(t, 404, perr.StatusCode)
}

func TestSessionCaptureWithoutQuests(t *testing.T) {
	s := NewSession(newTestConfig(t, nil))
	req := sessionStartRequest(t, "p1")
	req.Quests = nil

	captured, err := s.Capture(req)
	require.NoError(t, err)
	assert.NotNil(t, captured.Quests)
}

func TestFingerprint(t *testing.T) {
	a, err := Fingerprint(sessionStartRequest(t, "p1"))
	require.NoError(t, err)
	b, err := Fingerprint(sessionStartRequest(t, "p2"))
	require.NoError(t, err)
	assert.Equal(t, a, b, "the profile is not part of the baseline")

	changed := sessionStartRequest(t, "p1")
	changed.Locations.Maps["bigmap"].StaticAmmo["Caliber9x19PARA"][0].RelativeProbability = 13
	c, err := Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
