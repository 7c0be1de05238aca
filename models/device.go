package models

// DeviceAuthorization holds the state of an in-flight device-code login.
// It lives for the duration of one polling session and is never persisted.
type DeviceAuthorization struct {
	ClientID                string
	ClientSecret            string
	DeviceCode              string
	UserCode                string
	VerificationURI         string
	VerificationURIComplete string
	// Interval is the polling interval in seconds. It only ever grows
	// (SlowDown responses bump it by a fixed step).
	Interval int32
	// ExpiresIn is the authorization window in seconds.
	ExpiresIn int32
}
