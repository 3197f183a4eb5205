package authstate_test

import (
	"testing"

	authstate "github.com/goliatone/go-authstate"
	"github.com/stretchr/testify/assert"
)

func TestEnvelopePhases(t *testing.T) {
	tests := []struct {
		name     string
		envelope authstate.Envelope
		phase    authstate.Phase
		terminal bool
	}{
		{"zero value is idle", authstate.Envelope{}, authstate.PhaseIdle, false},
		{"idle", authstate.IdleEnvelope(), authstate.PhaseIdle, false},
		{"pending", authstate.PendingEnvelope(), authstate.PhasePending, false},
		{"succeeded", authstate.SucceededEnvelope(authstate.Unauthenticated()), authstate.PhaseSucceeded, true},
		{"failed", authstate.FailedEnvelope("boom"), authstate.PhaseFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.phase, tt.envelope.Phase())
			assert.Equal(t, tt.terminal, tt.envelope.IsTerminal())
		})
	}
}

func TestFailedEnvelopeAlwaysCarriesMessage(t *testing.T) {
	assert.Equal(t, "boom", authstate.FailedEnvelope("boom").Message())
	assert.Equal(t, authstate.UnknownErrorMessage, authstate.FailedEnvelope("").Message())
}

func TestSucceededEnvelopeCarriesOutcome(t *testing.T) {
	info := &authstate.TokenInfo{User: "alice"}
	profile := &authstate.Profile{Name: "Alice"}
	envelope := authstate.SucceededEnvelope(authstate.Authenticated("abc123", info, profile))

	outcome := envelope.Outcome()
	assert.True(t, outcome.IsAuthenticated())
	assert.Equal(t, "abc123", outcome.Token())
	assert.Same(t, info, outcome.TokenInfo())
	assert.Same(t, profile, outcome.Profile())
}
