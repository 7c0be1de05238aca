package auth

import (
	"context"
	"time"

	"github.com/BerryBytes/ccactl/models"
)

// TokenKind classifies the outcome of a single CreateToken attempt. The
// polling loop branches on kinds rather than on provider error types, so
// the provider error hierarchy stays contained in the RPC wrapper.
type TokenKind int

const (
	// KindSuccess means the user approved and an access token was issued.
	KindSuccess TokenKind = iota
	// KindPending means the user has not acted yet; keep polling.
	KindPending
	// KindSlowDown means the provider wants a longer polling interval.
	KindSlowDown
	// KindExpired means the device authorization lapsed before approval.
	KindExpired
	// KindError is any other provider failure; the run aborts.
	KindError
)

// TokenResult is one CreateToken attempt. Err is set only for KindError.
type TokenResult struct {
	AccessToken string
	Kind        TokenKind
	Err         error
}

// OIDCClient covers the identity provider's device-authorization RPCs.
type OIDCClient interface {
	RegisterClient(ctx context.Context, clientName string) (clientID, clientSecret string, err error)
	StartDeviceAuthorization(ctx context.Context, clientID, clientSecret, startURL string) (*models.DeviceAuthorization, error)
	CreateToken(ctx context.Context, session *models.DeviceAuthorization) TokenResult
}

// CredentialsClient exchanges a bearer access token for role credentials.
type CredentialsClient interface {
	GetRoleCredentials(ctx context.Context, accessToken, accountID, roleName string) (*models.AWSCredentials, error)
}

// Notifier opens the verification URL for the user. Failures are never
// fatal; the flow degrades to printed instructions.
type Notifier interface {
	OpenURL(url string) error
}

// Sleeper pauses between polling attempts and honors cancellation.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// CredentialStore is the cache the authenticator writes on success.
type CredentialStore interface {
	Save(record *models.CachedCredentials) error
}
