package authstate

// OutcomeState enumerates the variants of a resolution outcome.
type OutcomeState string

const (
	OutcomeUnresolved      OutcomeState = "unresolved"
	OutcomeAuthenticated   OutcomeState = "authenticated"
	OutcomeUnauthenticated OutcomeState = "unauthenticated"
)

// Outcome is the discriminated result of one resolution attempt. Exactly one
// state is active; Authenticated is only built once both validation and the
// profile fetch succeeded. The zero value is Unresolved.
type Outcome struct {
	state   OutcomeState
	token   string
	info    *TokenInfo
	profile *Profile
}

// Unresolved returns the "no determination yet" outcome.
func Unresolved() Outcome {
	return Outcome{state: OutcomeUnresolved}
}

// Unauthenticated returns the payload-free "no valid credential" outcome.
func Unauthenticated() Outcome {
	return Outcome{state: OutcomeUnauthenticated}
}

// Authenticated returns the fully resolved outcome carrying the raw token,
// the validation metadata, and the fetched profile.
func Authenticated(token string, info *TokenInfo, profile *Profile) Outcome {
	return Outcome{
		state:   OutcomeAuthenticated,
		token:   token,
		info:    info,
		profile: profile,
	}
}

// State returns the active variant.
func (o Outcome) State() OutcomeState {
	if o.state == "" {
		return OutcomeUnresolved
	}
	return o.state
}

// IsAuthenticated reports whether the outcome carries a valid session.
func (o Outcome) IsAuthenticated() bool {
	return o.State() == OutcomeAuthenticated
}

// Token returns the raw credential for authenticated outcomes.
func (o Outcome) Token() string {
	return o.token
}

// TokenInfo returns the validation metadata for authenticated outcomes.
func (o Outcome) TokenInfo() *TokenInfo {
	return o.info
}

// Profile returns the profile record for authenticated outcomes.
func (o Outcome) Profile() *Profile {
	return o.profile
}
