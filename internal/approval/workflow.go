package approval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BerryBytes/ccactl/internal/signing"
	"github.com/BerryBytes/ccactl/models"

	"github.com/rs/zerolog"
)

// tokenTTL is how long an approve/deny link stays valid.
const tokenTTL = 7 * 24 * time.Hour

// ValidationError reports the registration fields that were missing or
// empty. The caller can fix the request and resubmit.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing fields: " + strings.Join(e.Missing, ", ")
}

// RegistrationRequest is the inbound registration submission.
type RegistrationRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Submission is the outcome of a successful registration: the pending
// record plus the two minted action links. No server-side state exists;
// the links carry everything.
type Submission struct {
	Registration models.Registration
	ApproveURL   string
	DenyURL      string
}

// ApproveResult distinguishes a fresh account from the idempotent
// already-exists short circuit.
type ApproveResult struct {
	Registration  *models.Registration
	AlreadyExists bool
}

// Settings carries the operator-supplied configuration for the workflow.
type Settings struct {
	GroupID     string
	BaseURL     string
	FromEmail   string
	AdminEmail  string
	SSOStartURL string
}

// Workflow mints action tokens for pending registrations and resolves
// them into directory side effects. It is stateless and safe under
// arbitrary concurrency: every request carries its own state in the token.
type Workflow struct {
	codec     *signing.Codec
	directory Directory
	email     Sender
	settings  Settings
	logger    zerolog.Logger
	now       func() time.Time
}

func NewWorkflow(codec *signing.Codec, directory Directory, email Sender, settings Settings, logger zerolog.Logger) *Workflow {
	return &Workflow{
		codec:     codec,
		directory: directory,
		email:     email,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
	}
}

// NewWorkflowWithClock is used by tests that pin submission timestamps.
func NewWorkflowWithClock(codec *signing.Codec, directory Directory, email Sender, settings Settings, logger zerolog.Logger, now func() time.Time) *Workflow {
	w := NewWorkflow(codec, directory, email, settings, logger)
	w.now = now
	return w
}

// SubmitRegistration validates the request, mints the approve and deny
// tokens and emails the action links to the admin.
func (w *Workflow) SubmitRegistration(ctx context.Context, req RegistrationRequest) (*Submission, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := w.now().UTC()
	reg := models.Registration{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		SubmittedAt: now,
		ExpiresAt:   now.Add(tokenTTL),
	}

	approveToken, err := w.codec.Encode(reg, signing.ActionApprove)
	if err != nil {
		return nil, fmt.Errorf("failed to mint approve token: %w", err)
	}
	denyToken, err := w.codec.Encode(reg, signing.ActionDeny)
	if err != nil {
		return nil, fmt.Errorf("failed to mint deny token: %w", err)
	}

	sub := &Submission{
		Registration: reg,
		ApproveURL:   w.settings.BaseURL + "/approve?token=" + approveToken,
		DenyURL:      w.settings.BaseURL + "/deny?token=" + denyToken,
	}

	subject, text, html := adminRequestEmail(&reg, sub.ApproveURL, sub.DenyURL)
	if err := w.email.Send(ctx, w.settings.AdminEmail, subject, text, html); err != nil {
		return nil, fmt.Errorf("failed to send approval request email: %w", err)
	}

	w.logger.Info().
		Str("username", reg.Username).
		Time("expires_at", reg.ExpiresAt).
		Msg("registration submitted for approval")

	return sub, nil
}

// ResolveApprove validates an approve token and creates the account. A
// username that already exists in the directory short-circuits without a
// second create, which makes replayed approve links harmless.
func (w *Workflow) ResolveApprove(ctx context.Context, token string) (*ApproveResult, error) {
	reg, err := w.codec.Decode(token, signing.ActionApprove)
	if err != nil {
		return nil, err
	}

	existing, err := w.directory.FindUserByUsername(ctx, reg.Username)
	if err != nil {
		// The guard is best-effort: a lookup failure falls through to
		// creation, where a duplicate fails loudly.
		w.logger.Warn().Err(err).Str("username", reg.Username).Msg("existing-user lookup failed")
	}
	if existing != "" {
		w.logger.Info().Str("username", reg.Username).Msg("user already exists, skipping creation")
		return &ApproveResult{Registration: reg, AlreadyExists: true}, nil
	}

	userID, err := w.directory.CreateUser(ctx, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", reg.Username, err)
	}

	// From here on the user exists; later failures are reported but not
	// rolled back. The directory is the source of truth.
	if err := w.directory.AddUserToGroup(ctx, w.settings.GroupID, userID); err != nil {
		w.logger.Error().Err(err).
			Str("username", reg.Username).
			Str("user_id", userID).
			Msg("user created but group membership failed")
	}

	subject, text, html := welcomeEmail(reg, w.settings.SSOStartURL)
	if err := w.email.Send(ctx, reg.Email, subject, text, html); err != nil {
		w.logger.Error().Err(err).Str("username", reg.Username).Msg("user created but welcome email failed")
	}

	w.logger.Info().Str("username", reg.Username).Str("user_id", userID).Msg("registration approved")
	return &ApproveResult{Registration: reg}, nil
}

// ResolveDeny validates a deny token and notifies the requester. Email
// failure is swallowed; denial still succeeds for the clicking admin.
func (w *Workflow) ResolveDeny(ctx context.Context, token string) (*models.Registration, error) {
	reg, err := w.codec.Decode(token, signing.ActionDeny)
	if err != nil {
		return nil, err
	}

	subject, text, html := denialEmail(reg)
	if err := w.email.Send(ctx, reg.Email, subject, text, html); err != nil {
		w.logger.Error().Err(err).Str("username", reg.Username).Msg("denial notification failed")
	}

	w.logger.Info().Str("username", reg.Username).Msg("registration denied")
	return reg, nil
}

func validate(req RegistrationRequest) error {
	var missing []string
	if strings.TrimSpace(req.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "first_name")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "last_name")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
