package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BerryBytes/ccactl/internal/auth"
	"github.com/BerryBytes/ccactl/models"
	mock_ccactl "github.com/BerryBytes/ccactl/tests/mock"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sso"
	ssotypes "github.com/aws/aws-sdk-go-v2/service/sso/types"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	oidctypes "github.com/aws/aws-sdk-go-v2/service/ssooidc/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRegisterClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
	api.EXPECT().
		RegisterClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *ssooidc.RegisterClientInput, _ ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error) {
			assert.Equal(t, "ccactl", aws.ToString(params.ClientName))
			assert.Equal(t, "public", aws.ToString(params.ClientType))
			return &ssooidc.RegisterClientOutput{
				ClientId:     aws.String("client-id"),
				ClientSecret: aws.String("client-secret"),
			}, nil
		})

	client := auth.NewRealOIDCClient(api)
	id, secret, err := client.RegisterClient(context.Background(), "ccactl")

	assert.NoError(t, err)
	assert.Equal(t, "client-id", id)
	assert.Equal(t, "client-secret", secret)
}

func TestRegisterClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
	api.EXPECT().
		RegisterClient(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("throttled"))

	client := auth.NewRealOIDCClient(api)
	_, _, err := client.RegisterClient(context.Background(), "ccactl")

	assert.ErrorContains(t, err, "failed to register client")
}

func TestStartDeviceAuthorization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
	api.EXPECT().
		StartDeviceAuthorization(gomock.Any(), gomock.Any()).
		Return(&ssooidc.StartDeviceAuthorizationOutput{
			DeviceCode:              aws.String("device-code"),
			UserCode:                aws.String("ABCD-1234"),
			VerificationUri:         aws.String("https://device.sso.example.com"),
			VerificationUriComplete: aws.String("https://device.sso.example.com?user_code=ABCD-1234"),
			Interval:                7,
			ExpiresIn:               900,
		}, nil)

	client := auth.NewRealOIDCClient(api)
	session, err := client.StartDeviceAuthorization(context.Background(), "client-id", "client-secret", "https://my-sso.awsapps.com/start")

	assert.NoError(t, err)
	assert.Equal(t, "device-code", session.DeviceCode)
	assert.Equal(t, "ABCD-1234", session.UserCode)
	assert.Equal(t, "https://device.sso.example.com?user_code=ABCD-1234", session.VerificationURIComplete)
	assert.Equal(t, int32(7), session.Interval)
	assert.Equal(t, int32(900), session.ExpiresIn)
}

func TestStartDeviceAuthorizationDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Providers may omit the optional fields; the session falls back to
	// the RFC 8628 defaults and the bare verification URI.
	api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
	api.EXPECT().
		StartDeviceAuthorization(gomock.Any(), gomock.Any()).
		Return(&ssooidc.StartDeviceAuthorizationOutput{
			DeviceCode:      aws.String("device-code"),
			UserCode:        aws.String("ABCD-1234"),
			VerificationUri: aws.String("https://device.sso.example.com"),
		}, nil)

	client := auth.NewRealOIDCClient(api)
	session, err := client.StartDeviceAuthorization(context.Background(), "client-id", "client-secret", "https://my-sso.awsapps.com/start")

	assert.NoError(t, err)
	assert.Equal(t, "https://device.sso.example.com", session.VerificationURIComplete)
	assert.Equal(t, int32(5), session.Interval)
	assert.Equal(t, int32(600), session.ExpiresIn)
}

func TestCreateTokenClassification(t *testing.T) {
	session := &models.DeviceAuthorization{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		DeviceCode:   "device-code",
	}

	tests := []struct {
		name string
		err  error
		want auth.TokenKind
	}{
		{"authorization pending", &oidctypes.AuthorizationPendingException{}, auth.KindPending},
		{"slow down", &oidctypes.SlowDownException{}, auth.KindSlowDown},
		{"expired token", &oidctypes.ExpiredTokenException{}, auth.KindExpired},
		{"access denied", &oidctypes.AccessDeniedException{}, auth.KindError},
		{"transport failure", errors.New("connection reset"), auth.KindError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
			api.EXPECT().
				CreateToken(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			client := auth.NewRealOIDCClient(api)
			result := client.CreateToken(context.Background(), session)

			assert.Equal(t, tt.want, result.Kind)
			assert.Error(t, result.Err)
		})
	}
}

func TestCreateTokenSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOOIDCAPI(ctrl)
	api.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *ssooidc.CreateTokenInput, _ ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error) {
			assert.Equal(t, "urn:ietf:params:oauth:grant-type:device_code", aws.ToString(params.GrantType))
			assert.Equal(t, "device-code", aws.ToString(params.DeviceCode))
			return &ssooidc.CreateTokenOutput{AccessToken: aws.String("access-token")}, nil
		})

	client := auth.NewRealOIDCClient(api)
	result := client.CreateToken(context.Background(), &models.DeviceAuthorization{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		DeviceCode:   "device-code",
	})

	assert.Equal(t, auth.KindSuccess, result.Kind)
	assert.Equal(t, "access-token", result.AccessToken)
	assert.NoError(t, result.Err)
}

func TestGetRoleCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOAPI(ctrl)
	api.EXPECT().
		GetRoleCredentials(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params *sso.GetRoleCredentialsInput, _ ...func(*sso.Options)) (*sso.GetRoleCredentialsOutput, error) {
			assert.Equal(t, "access-token", aws.ToString(params.AccessToken))
			assert.Equal(t, "123456789012", aws.ToString(params.AccountId))
			assert.Equal(t, "CCA-CLI-Access", aws.ToString(params.RoleName))
			return &sso.GetRoleCredentialsOutput{
				RoleCredentials: &ssotypes.RoleCredentials{
					AccessKeyId:     aws.String("AKIAEXAMPLE"),
					SecretAccessKey: aws.String("secret"),
					SessionToken:    aws.String("session"),
					Expiration:      1700000000000,
				},
			}, nil
		})

	client := auth.NewRealCredentialsClient(api)
	creds, err := client.GetRoleCredentials(context.Background(), "access-token", "123456789012", "CCA-CLI-Access")

	assert.NoError(t, err)
	assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
	assert.Equal(t, "session", creds.SessionToken)
	assert.Equal(t, int64(1700000000000), creds.Expiration)
}

func TestGetRoleCredentialsEmptyResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mock_ccactl.NewMockSSOAPI(ctrl)
	api.EXPECT().
		GetRoleCredentials(gomock.Any(), gomock.Any()).
		Return(&sso.GetRoleCredentialsOutput{}, nil)

	client := auth.NewRealCredentialsClient(api)
	_, err := client.GetRoleCredentials(context.Background(), "access-token", "123456789012", "CCA-CLI-Access")

	assert.ErrorContains(t, err, "no role credentials")
}

func TestProviderErrorCode(t *testing.T) {
	assert.Equal(t, "UnauthorizedClientException", auth.ProviderErrorCode(&oidctypes.UnauthorizedClientException{}))
	assert.Equal(t, "connection reset", auth.ProviderErrorCode(errors.New("connection reset")))
}
