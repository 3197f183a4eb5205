package authstate_test

import (
	"context"

	authstate "github.com/goliatone/go-authstate"
	"github.com/stretchr/testify/mock"
)

// MockTokenStore implements authstate.TokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) GetToken() (string, bool) {
	args := m.Called()
	return args.String(0), args.Bool(1)
}

// MockVerificationClient implements authstate.VerificationClient
type MockVerificationClient struct {
	mock.Mock
}

func (m *MockVerificationClient) GetTokenInfo(ctx context.Context, token string) (*authstate.TokenInfo, error) {
	args := m.Called(ctx, token)
	info, _ := args.Get(0).(*authstate.TokenInfo)
	return info, args.Error(1)
}

// MockProfileFetcher implements authstate.ProfileFetcher
type MockProfileFetcher struct {
	mock.Mock
}

func (m *MockProfileFetcher) FetchProfile(ctx context.Context, token, username string) (*authstate.Profile, error) {
	args := m.Called(ctx, token, username)
	profile, _ := args.Get(0).(*authstate.Profile)
	return profile, args.Error(1)
}

// MockBroadcaster implements authstate.Broadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Publish(envelope authstate.Envelope) {
	m.Called(envelope)
}
