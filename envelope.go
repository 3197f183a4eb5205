package authstate

// Phase enumerates the lifecycle of an awaited resolution value.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)

// Envelope wraps a resolution outcome in its async phase. Succeeded and
// Failed are terminal for an attempt; a new attempt starts from fresh
// envelopes rather than mutating a terminal one. The zero value is Idle.
type Envelope struct {
	phase   Phase
	outcome Outcome
	message string
}

// IdleEnvelope returns the initial, not-yet-started envelope.
func IdleEnvelope() Envelope {
	return Envelope{phase: PhaseIdle}
}

// PendingEnvelope returns the in-flight envelope published when a
// resolution attempt starts.
func PendingEnvelope() Envelope {
	return Envelope{phase: PhasePending}
}

// SucceededEnvelope returns the terminal success envelope for outcome.
func SucceededEnvelope(outcome Outcome) Envelope {
	return Envelope{phase: PhaseSucceeded, outcome: outcome}
}

// FailedEnvelope returns the terminal failure envelope. Failed envelopes
// always carry a human-readable message.
func FailedEnvelope(message string) Envelope {
	if message == "" {
		message = UnknownErrorMessage
	}
	return Envelope{phase: PhaseFailed, message: message}
}

// Phase returns the envelope's phase.
func (e Envelope) Phase() Phase {
	if e.phase == "" {
		return PhaseIdle
	}
	return e.phase
}

// Outcome returns the wrapped outcome. Only meaningful for Succeeded.
func (e Envelope) Outcome() Outcome {
	return e.outcome
}

// Message returns the failure message. Only meaningful for Failed.
func (e Envelope) Message() string {
	return e.message
}

// IsTerminal reports whether the envelope closed its resolution attempt.
func (e Envelope) IsTerminal() bool {
	return e.Phase() == PhaseSucceeded || e.Phase() == PhaseFailed
}
