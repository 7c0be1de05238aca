package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BerryBytes/ccactl/models"
)

// Action tags an action token with the endpoint it is valid for. A token
// minted for one action is rejected by the other endpoint.
type Action string

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
)

// ErrInvalidToken covers every verification failure: bad encoding, bad
// signature, wrong action, expired payload. Callers must not surface the
// underlying reason to the clicking party.
var ErrInvalidToken = errors.New("invalid or expired token")

const separator = "."

// envelope is the signed document. Field order is fixed by the struct, so
// re-encoding the same payload always produces the same bytes and the same
// token. Idempotent re-issuance of identical links is intentional.
type envelope struct {
	Data   models.Registration `json:"data"`
	Action Action              `json:"action"`
}

// Codec encodes and verifies HMAC-signed action tokens. It is stateless
// apart from the secret key and safe for concurrent use.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// NewCodecWithClock is used by tests that need to step across the expiry
// boundary.
func NewCodecWithClock(secret []byte, now func() time.Time) *Codec {
	return &Codec{secret: secret, now: now}
}

// Encode serializes the registration and action, signs the encoding and
// wraps the pair into an opaque URL-safe token.
func (c *Codec) Encode(reg models.Registration, action Action) (string, error) {
	payload, err := json.Marshal(envelope{Data: reg, Action: action})
	if err != nil {
		return "", fmt.Errorf("failed to serialize token payload: %w", err)
	}

	inner := base64.URLEncoding.EncodeToString(payload)
	token := inner + separator + c.sign(inner)
	return base64.URLEncoding.EncodeToString([]byte(token)), nil
}

// Decode verifies and unwraps a token minted by Encode. The signature is
// checked in constant time before any payload byte is trusted; the action
// must match expected and the embedded expiry must be in the future.
func (c *Codec) Decode(token string, expected Action) (*models.Registration, error) {
	outer, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed outer encoding", ErrInvalidToken)
	}

	inner, digest, found := strings.Cut(string(outer), separator)
	if !found {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidToken)
	}

	if !hmac.Equal([]byte(digest), []byte(c.sign(inner))) {
		return nil, fmt.Errorf("%w: signature mismatch", ErrInvalidToken)
	}

	payload, err := base64.URLEncoding.DecodeString(inner)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed payload encoding", ErrInvalidToken)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("%w: unparsable payload", ErrInvalidToken)
	}

	if env.Action != expected {
		return nil, fmt.Errorf("%w: action mismatch", ErrInvalidToken)
	}

	if !c.now().UTC().Before(env.Data.ExpiresAt) {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	reg := env.Data
	return &reg, nil
}

func (c *Codec) sign(inner string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(inner))
	return hex.EncodeToString(mac.Sum(nil))
}
