package models

import "time"

// AWSCredentials holds the temporary credentials returned by AWS SSO.
type AWSCredentials struct {
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	SessionToken    string `json:"sessionToken" yaml:"sessionToken"`
	// Expiration is a millisecond epoch timestamp, as reported by the
	// GetRoleCredentials API.
	Expiration int64 `json:"expiration" yaml:"expiration"`
}

// ExpiresAt converts the millisecond epoch expiration to a UTC time.
func (c *AWSCredentials) ExpiresAt() time.Time {
	return time.UnixMilli(c.Expiration).UTC()
}

// CachedCredentials is the single persisted credential record, including
// the provenance of the login that produced it.
type CachedCredentials struct {
	Credentials AWSCredentials `json:"credentials" yaml:"credentials"`
	AccessToken string         `json:"accessToken" yaml:"accessToken"`
	CachedAt    time.Time      `json:"cachedAt" yaml:"cachedAt"`
	SSOStartURL string         `json:"ssoStartUrl" yaml:"ssoStartUrl"`
	SSORegion   string         `json:"ssoRegion" yaml:"ssoRegion"`
	AccountID   string         `json:"accountId" yaml:"accountId"`
	RoleName    string         `json:"roleName" yaml:"roleName"`
}
