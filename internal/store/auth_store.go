package store

import (
	"context"
	"errors"

	"brandscope-be/internal/apiclient"
	"brandscope-be/internal/dto"
	"brandscope-be/internal/pkg/logger"
	"brandscope-be/internal/service"
	"brandscope-be/internal/session"
	"brandscope-be/pkg/events"
)

type IAuthStore interface {
	SignIn(ctx context.Context, req *dto.SignInRequest) error
	SignUp(ctx context.Context, req *dto.SignUpRequest) error

	// ExchangeSSOToken trades an external portal token for a session.
	// It always runs, even over a live session, so re-authentication
	// from the portal can replace the current credential.
	ExchangeSSOToken(ctx context.Context, token string) error

	SignOut(ctx context.Context) error
}

type authStore struct {
	api       *apiclient.Client
	sessions  *session.Manager
	publisher service.IPublisherService
	logger    logger.ILogger
}

func NewAuthStore(api *apiclient.Client, sessions *session.Manager, publisher service.IPublisherService, log logger.ILogger) IAuthStore {
	return &authStore{
		api:       api,
		sessions:  sessions,
		publisher: publisher,
		logger:    log,
	}
}

func (s *authStore) SignIn(ctx context.Context, req *dto.SignInRequest) error {
	res := s.api.Post(ctx, "/api/auth/signin", req, &apiclient.RequestOptions{SkipAuth: true})
	return s.establishFromResult(ctx, res, "signin")
}

func (s *authStore) SignUp(ctx context.Context, req *dto.SignUpRequest) error {
	res := s.api.Post(ctx, "/api/auth/signup", req, &apiclient.RequestOptions{SkipAuth: true})
	return s.establishFromResult(ctx, res, "signup")
}

func (s *authStore) ExchangeSSOToken(ctx context.Context, token string) error {
	res := s.api.Post(ctx, "/api/auth/signin", &dto.SSOExchangeRequest{Token: token},
		&apiclient.RequestOptions{SkipAuth: true})
	return s.establishFromResult(ctx, res, "sso")
}

func (s *authStore) SignOut(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *authStore) establishFromResult(ctx context.Context, res apiclient.Result, flow string) error {
	if !res.OK() {
		return errors.New(res.Err)
	}

	var tokenResp dto.TokenResponse
	if err := res.DecodeInto(&tokenResp); err != nil || tokenResp.AccessToken == "" {
		return errors.New("invalid credential response")
	}

	if err := s.sessions.Establish(ctx, tokenResp.AccessToken, tokenResp.TokenType); err != nil {
		s.logger.Error("AuthStore", "Failed to persist session", map[string]interface{}{
			"flow": flow, "error": err.Error(),
		})
		return err
	}

	if err := s.publisher.Publish(ctx, events.New(events.TypeSessionOpened, map[string]interface{}{
		"flow": flow,
	})); err != nil {
		s.logger.Warn("AuthStore", "Failed to publish session event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return nil
}
