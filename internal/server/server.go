package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BerryBytes/ccactl/internal/approval"
	"github.com/BerryBytes/ccactl/internal/signing"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/identitystore"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server exposes the registration-approval workflow over three routes:
// POST /register, GET /approve and GET /deny. It holds no per-request
// state; everything a click needs travels inside the token.
type Server struct {
	workflow *approval.Workflow
	logger   zerolog.Logger
	router   chi.Router
}

// New builds a server around an existing workflow. Production wiring goes
// through NewFromConfig.
func New(workflow *approval.Workflow, logger zerolog.Logger) *Server {
	s := &Server{workflow: workflow, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Post("/register", s.handleRegister)
	r.Post("/", s.handleRegister)
	r.Get("/approve", s.handleApprove)
	r.Get("/deny", s.handleDeny)
	s.router = r

	return s
}

// NewFromConfig wires the AWS-backed collaborators from configuration.
func NewFromConfig(ctx context.Context, cfg *Config, logger zerolog.Logger) (*Server, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var sender approval.Sender
	if cfg.EmailBackend == "smtp" {
		sender = approval.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.FromEmail, cfg.SMTPUser, cfg.SMTPPass)
	} else {
		sender = approval.NewSESSender(sesv2.NewFromConfig(awsCfg), cfg.FromEmail)
	}

	workflow := approval.NewWorkflow(
		signing.NewCodec([]byte(cfg.SecretKey)),
		approval.NewIdentityStoreDirectory(identitystore.NewFromConfig(awsCfg), cfg.IdentityStoreID),
		sender,
		approval.Settings{
			GroupID:     cfg.GroupID,
			BaseURL:     cfg.BaseURL,
			FromEmail:   cfg.FromEmail,
			AdminEmail:  cfg.AdminEmail,
			SSOStartURL: cfg.SSOStartURL,
		},
		logger,
	)

	return New(workflow, logger), nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until the context is canceled or the listener
// fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("approval service listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req approval.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	_, err := s.workflow.SubmitRegistration(r.Context(), req)
	if err != nil {
		var vErr *approval.ValidationError
		if errors.As(err, &vErr) {
			writeJSONError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		s.logger.Error().Err(err).Msg("registration submission failed")
		writeJSONError(w, http.StatusInternalServerError, "failed to submit registration")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Registration submitted successfully",
		"status":  "pending_approval",
	})
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeHTML(w, http.StatusBadRequest, missingTokenPage)
		return
	}

	result, err := s.workflow.ResolveApprove(r.Context(), token)
	if err != nil {
		if errors.Is(err, signing.ErrInvalidToken) {
			// One generic message for every decode failure; no oracle.
			writeHTML(w, http.StatusBadRequest, invalidTokenPage)
			return
		}
		s.logger.Error().Err(err).Msg("approval failed")
		writeHTML(w, http.StatusInternalServerError, creationFailedPage)
		return
	}

	if result.AlreadyExists {
		writeHTML(w, http.StatusOK, alreadyExistsPage(result.Registration))
		return
	}
	writeHTML(w, http.StatusOK, approvedPage(result.Registration))
}

func (s *Server) handleDeny(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeHTML(w, http.StatusBadRequest, missingTokenPage)
		return
	}

	reg, err := s.workflow.ResolveDeny(r.Context(), token)
	if err != nil {
		if errors.Is(err, signing.ErrInvalidToken) {
			writeHTML(w, http.StatusBadRequest, invalidTokenPage)
			return
		}
		s.logger.Error().Err(err).Msg("denial failed")
		writeHTML(w, http.StatusInternalServerError, creationFailedPage)
		return
	}

	writeHTML(w, http.StatusOK, deniedPage(reg))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
