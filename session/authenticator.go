package session

import (
	"context"

	"github.com/monext/checkout.sdk.go/models"
)

// Authenticator is the native authentication surface the store depends on.
// Satisfied by threeds.Manager; mocked in tests.
type Authenticator interface {
	IsInitialized() bool
	Initialize(ctx context.Context, token, cardNetworkName string) error
	GenerateContextData(ctx context.Context, token string) (*models.SDKContextData, error)
	DoChallenge(ctx context.Context, token string, challenge *models.SdkChallengeData) (*models.AuthenticationResponse, error)
	Close(ctx context.Context, token string)
}
