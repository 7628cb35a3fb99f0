package plerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "expected original error message to stay unchanged")
	assert.Equal(t, "changed", changedE.Message)
}

func TestWithExtrasDoesNotLeak(t *testing.T) {
	withExtras := ErrSessionNotFound.WithExtras(Extras{"profileId": "abc"})
	assert.Nil(t, ErrSessionNotFound.Extras)
	assert.Equal(t, "abc", (*withExtras.Extras)["profileId"])
	assert.Equal(t, "SESSION_NOT_FOUND: no session captured for profile: start a session first", withExtras.Error())
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"event"})
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Equal(t, 400, e.StatusCode)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Equal(t, []string{"event"}, (*e.Extras)["violations"])
}
