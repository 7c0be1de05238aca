package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/BerryBytes/ccactl/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	oidctypes "github.com/aws/aws-sdk-go-v2/service/ssooidc/types"
	"github.com/aws/smithy-go"
)

const (
	clientType      = "public"
	deviceGrantType = "urn:ietf:params:oauth:grant-type:device_code"

	defaultInterval  int32 = 5
	defaultExpiresIn int32 = 600
)

// SSOOIDCAPI is the seam over the SDK's sso-oidc client used for mocking.
type SSOOIDCAPI interface {
	RegisterClient(ctx context.Context, params *ssooidc.RegisterClientInput, optFns ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error)
	StartDeviceAuthorization(ctx context.Context, params *ssooidc.StartDeviceAuthorizationInput, optFns ...func(*ssooidc.Options)) (*ssooidc.StartDeviceAuthorizationOutput, error)
	CreateToken(ctx context.Context, params *ssooidc.CreateTokenInput, optFns ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error)
}

// SSOAPI is the seam over the SDK's sso client used for mocking.
type SSOAPI interface {
	GetRoleCredentials(ctx context.Context, params *sso.GetRoleCredentialsInput, optFns ...func(*sso.Options)) (*sso.GetRoleCredentialsOutput, error)
}

// RealOIDCClient implements OIDCClient on the AWS sso-oidc service.
type RealOIDCClient struct {
	api SSOOIDCAPI
}

func NewRealOIDCClient(api SSOOIDCAPI) *RealOIDCClient {
	return &RealOIDCClient{api: api}
}

// NewSDKClients builds the provider clients for the given SSO region.
func NewSDKClients(ctx context.Context, region string) (*RealOIDCClient, *RealCredentialsClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewRealOIDCClient(ssooidc.NewFromConfig(cfg)), NewRealCredentialsClient(sso.NewFromConfig(cfg)), nil
}

func (c *RealOIDCClient) RegisterClient(ctx context.Context, clientName string) (string, string, error) {
	out, err := c.api.RegisterClient(ctx, &ssooidc.RegisterClientInput{
		ClientName: aws.String(clientName),
		ClientType: aws.String(clientType),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to register client: %w", err)
	}
	return aws.ToString(out.ClientId), aws.ToString(out.ClientSecret), nil
}

func (c *RealOIDCClient) StartDeviceAuthorization(ctx context.Context, clientID, clientSecret, startURL string) (*models.DeviceAuthorization, error) {
	out, err := c.api.StartDeviceAuthorization(ctx, &ssooidc.StartDeviceAuthorizationInput{
		ClientId:     aws.String(clientID),
		ClientSecret: aws.String(clientSecret),
		StartUrl:     aws.String(startURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	session := &models.DeviceAuthorization{
		ClientID:                clientID,
		ClientSecret:            clientSecret,
		DeviceCode:              aws.ToString(out.DeviceCode),
		UserCode:                aws.ToString(out.UserCode),
		VerificationURI:         aws.ToString(out.VerificationUri),
		VerificationURIComplete: aws.ToString(out.VerificationUriComplete),
		Interval:                out.Interval,
		ExpiresIn:               out.ExpiresIn,
	}
	if session.VerificationURIComplete == "" {
		session.VerificationURIComplete = session.VerificationURI
	}
	if session.Interval <= 0 {
		session.Interval = defaultInterval
	}
	if session.ExpiresIn <= 0 {
		session.ExpiresIn = defaultExpiresIn
	}
	return session, nil
}

// CreateToken performs one polling attempt and folds the provider's error
// hierarchy into a TokenKind, so callers never inspect provider errors.
func (c *RealOIDCClient) CreateToken(ctx context.Context, session *models.DeviceAuthorization) TokenResult {
	out, err := c.api.CreateToken(ctx, &ssooidc.CreateTokenInput{
		ClientId:     aws.String(session.ClientID),
		ClientSecret: aws.String(session.ClientSecret),
		GrantType:    aws.String(deviceGrantType),
		DeviceCode:   aws.String(session.DeviceCode),
	})
	if err != nil {
		return TokenResult{Kind: classifyTokenError(err), Err: err}
	}
	return TokenResult{Kind: KindSuccess, AccessToken: aws.ToString(out.AccessToken)}
}

func classifyTokenError(err error) TokenKind {
	var pending *oidctypes.AuthorizationPendingException
	if errors.As(err, &pending) {
		return KindPending
	}
	var slowDown *oidctypes.SlowDownException
	if errors.As(err, &slowDown) {
		return KindSlowDown
	}
	var expired *oidctypes.ExpiredTokenException
	if errors.As(err, &expired) {
		return KindExpired
	}
	return KindError
}

// ProviderErrorCode extracts the provider's error code for operator-facing
// messages, falling back to the raw error text.
func ProviderErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return err.Error()
}

// RealCredentialsClient implements CredentialsClient on the AWS sso service.
type RealCredentialsClient struct {
	api SSOAPI
}

func NewRealCredentialsClient(api SSOAPI) *RealCredentialsClient {
	return &RealCredentialsClient{api: api}
}

func (c *RealCredentialsClient) GetRoleCredentials(ctx context.Context, accessToken, accountID, roleName string) (*models.AWSCredentials, error) {
	out, err := c.api.GetRoleCredentials(ctx, &sso.GetRoleCredentialsInput{
		AccessToken: aws.String(accessToken),
		AccountId:   aws.String(accountID),
		RoleName:    aws.String(roleName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get role credentials: %w", err)
	}
	if out.RoleCredentials == nil {
		return nil, fmt.Errorf("provider returned no role credentials")
	}

	return &models.AWSCredentials{
		AccessKeyID:     aws.ToString(out.RoleCredentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.RoleCredentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.RoleCredentials.SessionToken),
		Expiration:      out.RoleCredentials.Expiration,
	}, nil
}
