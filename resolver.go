package authstate

import (
	"context"
)

// Resolver is the resolution state machine. One Resolve call performs one
// attempt: read token, validate, fetch profile, classify. Steps are strictly
// sequential; each depends on the previous step's output. Concurrent Resolve
// calls are not deduplicated, the last published envelope wins.
type Resolver struct {
	store       TokenStore
	verifier    VerificationClient
	profiles    ProfileFetcher
	broadcaster Broadcaster
	logger      Logger
	provider    LoggerProvider
}

// NewResolver returns a Resolver wired to the given collaborators.
func NewResolver(store TokenStore, verifier VerificationClient, profiles ProfileFetcher) *Resolver {
	loggerProvider, logger := ResolveLogger("authstate.resolver", nil, nil)
	return &Resolver{
		store:       store,
		verifier:    verifier,
		profiles:    profiles,
		broadcaster: noopBroadcaster{},
		logger:      logger,
		provider:    loggerProvider,
	}
}

// WithBroadcaster publishes envelope transitions to sink.
func (r *Resolver) WithBroadcaster(sink Broadcaster) *Resolver {
	r.broadcaster = normalizeBroadcaster(sink)
	return r
}

func (r *Resolver) WithLogger(logger Logger) *Resolver {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// WithLoggerProvider overrides the logger provider used by the resolver.
func (r *Resolver) WithLoggerProvider(provider LoggerProvider) *Resolver {
	r.provider, r.logger = ResolveLogger("authstate.resolver", provider, r.logger)
	return r
}

// Resolve runs one resolution attempt. Pending is published immediately,
// then exactly one terminal envelope; the intermediate steps are invisible
// to observers. Every failure is converted into a terminal envelope here,
// nothing propagates to the caller as an error.
func (r *Resolver) Resolve(ctx context.Context) Envelope {
	r.broadcaster.Publish(PendingEnvelope())

	envelope := r.resolve(ctx)
	r.broadcaster.Publish(envelope)

	return envelope
}

func (r *Resolver) resolve(ctx context.Context) Envelope {
	token, ok := r.store.GetToken()
	if !ok || token == "" {
		r.logger.Debug("no stored credential, resolving unauthenticated")
		return SucceededEnvelope(Unauthenticated())
	}

	info, err := r.verifier.GetTokenInfo(ctx, token)
	if err != nil {
		return r.classify(err)
	}

	if info == nil {
		// The service recognized the token as invalid without raising.
		r.logger.Debug("verification returned no metadata, resolving unauthenticated")
		return SucceededEnvelope(Unauthenticated())
	}

	profile, err := r.profiles.FetchProfile(ctx, token, info.User)
	if err != nil {
		return r.classify(err)
	}

	if profile == nil {
		// A validated token with no profile record is an error, unlike the
		// verification failures above. Consumers rely on this asymmetry.
		r.logger.Error("profile lookup came back empty", "user", info.User)
		return FailedEnvelope("User not found: " + info.User)
	}

	return SucceededEnvelope(Authenticated(token, info, profile))
}

// classify applies the three-way failure partition: the invalid-credential
// code collapses into Unauthenticated, every other failure becomes Failed
// with the best message available.
func (r *Resolver) classify(err error) Envelope {
	if IsInvalidTokenError(err) {
		r.logger.Debug("credential rejected by service, resolving unauthenticated", "error", err)
		return SucceededEnvelope(Unauthenticated())
	}

	r.logger.Error("resolution attempt failed", "error", err)
	return FailedEnvelope(FailureMessage(err))
}
