package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BerryBytes/ccactl/internal/config"
	"github.com/BerryBytes/ccactl/models"
)

const clientName = "ccactl"

// slowDownStep is the fixed interval increase applied on every SlowDown
// response. The interval never decreases for the life of a session.
const slowDownStep = 5 * time.Second

var (
	// ErrClientRegistration covers a failed RegisterClient RPC. Fatal, no retry.
	ErrClientRegistration = errors.New("client registration failed")
	// ErrDeviceAuthorization covers a failed StartDeviceAuthorization RPC.
	ErrDeviceAuthorization = errors.New("device authorization failed")
	// ErrAuthTimeout means the polling window elapsed without approval.
	ErrAuthTimeout = errors.New("authentication timeout - please try again")
	// ErrAuthExpired means the provider reported the device code expired.
	ErrAuthExpired = errors.New("authentication expired - please try again")
	// ErrCredentialFetch covers a failed GetRoleCredentials RPC.
	ErrCredentialFetch = errors.New("failed to fetch AWS credentials")
)

// Authenticator drives one device-code login end to end: client
// registration, device authorization, bounded polling and the final
// credential exchange. One invocation is strictly sequential; concurrent
// sessions are not supported.
type Authenticator struct {
	cfg      *config.Config
	oidc     OIDCClient
	creds    CredentialsClient
	store    CredentialStore
	notifier Notifier
	sleeper  Sleeper
	out      io.Writer
	now      func() time.Time
}

func NewAuthenticator(
	cfg *config.Config,
	oidc OIDCClient,
	creds CredentialsClient,
	store CredentialStore,
	notifier Notifier,
	sleeper Sleeper,
	out io.Writer,
) *Authenticator {
	return &Authenticator{
		cfg:      cfg,
		oidc:     oidc,
		creds:    creds,
		store:    store,
		notifier: notifier,
		sleeper:  sleeper,
		out:      out,
		now:      time.Now,
	}
}

// Login performs the full authentication chain and caches the result.
// Nothing is written to the cache unless every step succeeds.
func (a *Authenticator) Login(ctx context.Context) (*models.CachedCredentials, error) {
	fmt.Fprintln(a.out, "Initiating Cloud CLI Access authentication...")

	fmt.Fprintln(a.out, "Registering client...")
	clientID, clientSecret, err := a.oidc.RegisterClient(ctx, clientName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientRegistration, err)
	}

	fmt.Fprintln(a.out, "Starting device authorization...")
	session, err := a.oidc.StartDeviceAuthorization(ctx, clientID, clientSecret, a.cfg.SSOStartURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceAuthorization, err)
	}

	a.displayInstructions(session)

	fmt.Fprintln(a.out, "\nWaiting for authentication...")
	accessToken, err := a.pollForToken(ctx, session)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(a.out, "\nAuthentication successful!")

	fmt.Fprintln(a.out, "Fetching AWS credentials...")
	creds, err := a.creds.GetRoleCredentials(ctx, accessToken, a.cfg.AccountID, a.cfg.RoleName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCredentialFetch, err)
	}

	record := &models.CachedCredentials{
		Credentials: *creds,
		AccessToken: accessToken,
		CachedAt:    a.now().UTC(),
		SSOStartURL: a.cfg.SSOStartURL,
		SSORegion:   a.cfg.SSORegion,
		AccountID:   a.cfg.AccountID,
		RoleName:    a.cfg.RoleName,
	}
	if err := a.store.Save(record); err != nil {
		return nil, fmt.Errorf("failed to cache credentials: %w", err)
	}

	fmt.Fprintln(a.out, "Credentials cached successfully")
	fmt.Fprintf(a.out, "Valid until: %s\n", creds.ExpiresAt().Format(time.RFC3339))

	return record, nil
}

func (a *Authenticator) displayInstructions(session *models.DeviceAuthorization) {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "============================================================")
	fmt.Fprintln(a.out, "Opening browser for authentication...")
	fmt.Fprintln(a.out, "\nIf the browser doesn't open automatically, visit:")
	fmt.Fprintln(a.out, session.VerificationURI)
	fmt.Fprintf(a.out, "\nAnd enter code: %s\n", session.UserCode)
	fmt.Fprintln(a.out, "============================================================")

	// Browser launch is best-effort; a failure degrades to the printed
	// instructions above.
	if err := a.notifier.OpenURL(session.VerificationURIComplete); err != nil {
		fmt.Fprintf(a.out, "\nCould not open browser automatically: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "\nBrowser opened")
}

// pollForToken polls CreateToken until success, a fatal provider outcome,
// or the wall-clock budget runs out. The budget is checked against the
// session's expiresIn even if the provider never reports expiry itself.
func (a *Authenticator) pollForToken(ctx context.Context, session *models.DeviceAuthorization) (string, error) {
	deadline := a.now().Add(time.Duration(session.ExpiresIn) * time.Second)

	for {
		if !a.now().Before(deadline) {
			return "", ErrAuthTimeout
		}

		if err := a.sleeper.Sleep(ctx, time.Duration(session.Interval)*time.Second); err != nil {
			return "", err
		}

		result := a.oidc.CreateToken(ctx, session)
		switch result.Kind {
		case KindSuccess:
			return result.AccessToken, nil
		case KindPending:
			fmt.Fprint(a.out, ".")
		case KindSlowDown:
			session.Interval += int32(slowDownStep / time.Second)
			if err := a.sleeper.Sleep(ctx, slowDownStep); err != nil {
				return "", err
			}
		case KindExpired:
			return "", ErrAuthExpired
		default:
			return "", fmt.Errorf("authentication error: %w", result.Err)
		}
	}
}
