package auth

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BerryBytes/ccactl/internal/cache"
	"github.com/BerryBytes/ccactl/internal/config"
	"github.com/BerryBytes/ccactl/models"

	promptutils "github.com/BerryBytes/ccactl/utils/prompt"

	"github.com/spf13/afero"
)

// Status is the authentication state reported to the user.
type Status struct {
	Record *models.CachedCredentials
	Valid  bool
}

// ConfigureOptions carries the configure command's flag values. Empty
// required fields are prompted for interactively.
type ConfigureOptions struct {
	SSOStartURL string
	SSORegion   string
	AccountID   string
	RoleName    string
}

// Service is the surface the CLI commands are built against.
type Service interface {
	Configure(opts ConfigureOptions) (*config.Config, error)
	Login(ctx context.Context) (*models.CachedCredentials, error)
	Logout() error
	Status() (*Status, error)
	CurrentCredentials() (*models.CachedCredentials, error)
}

// ClientFactory builds the provider clients once the SSO region is known.
type ClientFactory func(ctx context.Context, region string) (OIDCClient, CredentialsClient, error)

// RealService wires the configuration store, the credential cache and the
// device-flow authenticator behind the Service interface.
type RealService struct {
	ConfigStore *config.Store
	CacheStore  *cache.Store
	Prompter    promptutils.Prompter
	Notifier    Notifier
	Sleeper     Sleeper
	Clients     ClientFactory
	Out         io.Writer
}

// DefaultService builds the production service on the OS filesystem and
// the per-user config directory.
func DefaultService() (*RealService, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	fs := afero.NewOsFs()
	return NewRealService(config.NewStore(fs, dir), cache.NewStore(fs, dir), promptutils.NewPrompt()), nil
}

func NewRealService(configStore *config.Store, cacheStore *cache.Store, prompter promptutils.Prompter) *RealService {
	return &RealService{
		ConfigStore: configStore,
		CacheStore:  cacheStore,
		Prompter:    prompter,
		Notifier:    BrowserNotifier{},
		Sleeper:     RealSleeper{},
		Clients: func(ctx context.Context, region string) (OIDCClient, CredentialsClient, error) {
			oidc, creds, err := NewSDKClients(ctx, region)
			if err != nil {
				return nil, nil, err
			}
			return oidc, creds, nil
		},
		Out: os.Stdout,
	}
}

// Configure fills in missing options interactively and persists the result.
func (s *RealService) Configure(opts ConfigureOptions) (*config.Config, error) {
	var err error
	if opts.SSOStartURL == "" {
		opts.SSOStartURL, err = s.Prompter.PromptRequired("SSO start URL (e.g., https://my-sso-portal.awsapps.com/start)")
		if err != nil {
			return nil, err
		}
	}
	if opts.AccountID == "" {
		opts.AccountID, err = s.Prompter.PromptRequired("AWS account ID")
		if err != nil {
			return nil, err
		}
	}
	if opts.SSORegion == "" {
		opts.SSORegion, err = s.Prompter.PromptWithDefault("SSO region", "us-east-1")
		if err != nil {
			return nil, err
		}
	}
	if opts.RoleName == "" {
		opts.RoleName, err = s.Prompter.PromptWithDefault("IAM role name", "CCA-CLI-Access")
		if err != nil {
			return nil, err
		}
	}

	cfg := &config.Config{
		SSOStartURL: opts.SSOStartURL,
		SSORegion:   opts.SSORegion,
		AccountID:   opts.AccountID,
		RoleName:    opts.RoleName,
	}
	if err := s.ConfigStore.Save(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Login runs the full device-flow chain using the stored configuration.
func (s *RealService) Login(ctx context.Context) (*models.CachedCredentials, error) {
	cfg, err := s.ConfigStore.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.Complete() {
		return nil, config.ErrNotConfigured
	}

	oidc, creds, err := s.Clients(ctx, cfg.SSORegion)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider clients: %w", err)
	}

	authenticator := NewAuthenticator(cfg, oidc, creds, s.CacheStore, s.Notifier, s.Sleeper, s.Out)
	return authenticator.Login(ctx)
}

// Logout clears the cached credentials.
func (s *RealService) Logout() error {
	return s.CacheStore.Invalidate()
}

// Status reports the cached record and whether it is still valid.
func (s *RealService) Status() (*Status, error) {
	record, err := s.CacheStore.Load()
	if err != nil {
		return nil, err
	}
	return &Status{Record: record, Valid: s.CacheStore.IsValid(record)}, nil
}

// CurrentCredentials returns valid cached credentials or
// cache.ErrNotAuthenticated.
func (s *RealService) CurrentCredentials() (*models.CachedCredentials, error) {
	return s.CacheStore.Current()
}
