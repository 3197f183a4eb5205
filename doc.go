// Package authstate resolves a client's authentication status at startup.
//
// Resolution is a single-pass pipeline: read the locally stored credential
// token, validate it against the remote verification service, fetch the
// user's profile, and classify the result into one terminal outcome.
//
// Outcomes and envelopes:
//   - Outcome is a tagged variant: Unresolved, Authenticated (token +
//     validation metadata + profile) or Unauthenticated. Authenticated is
//     only reachable after both validation and the profile fetch succeed.
//   - Envelope wraps an Outcome in one of four phases (Idle, Pending,
//     Succeeded, Failed). Succeeded and Failed are terminal for an attempt;
//     a new attempt always builds fresh envelopes.
//
// Error classification:
//   - The provider-specific invalid/expired credential code collapses into
//     Succeeded(Unauthenticated) so consumers can tell "logged out" apart
//     from "something broke".
//   - Any other service-classified failure surfaces as Failed with the
//     provider message; unclassified failures surface with their message or
//     the "Unknown Error" fallback.
//   - A validated token whose profile cannot be located is an error, not an
//     unauthenticated outcome. Keep that asymmetry.
//
// Collaborators (TokenStore, VerificationClient, ProfileFetcher,
// Broadcaster) are narrow interfaces. Concrete implementations live in
// store/keychain, provider/httpapi, provider/jwks, and repository.
package authstate
