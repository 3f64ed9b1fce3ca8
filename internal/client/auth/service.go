// Package auth отвечает за жизненный цикл OAuth токенов: обмен
// долгоживущих учетных данных на короткоживущий access token, локальный
// кэш токенов и первичную интерактивную авторизацию.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/client/storage"
	"github.com/iudanet/stravasync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// ErrNotAuthorized возвращается, когда нет ни кэшированных токенов,
// ни refresh token'а из окружения
var ErrNotAuthorized = errors.New("not authorized: run 'stravasync authorize' or set STRAVA_REFRESH_TOKEN")

// Service определяет интерфейс authenticator'а
type Service interface {
	// AccessToken возвращает валидный access token: из кэша, либо через
	// refresh обмен с сохранением ротированной пары в кэш.
	// Ошибка здесь фатальна для запуска — до каких-либо мутаций лога.
	AccessToken(ctx context.Context) (string, error)

	// Authorize обменивает authorization code на первую пару токенов
	// и кладет ее в кэш
	Authorize(ctx context.Context, code string) (*storage.TokenData, error)

	// Status возвращает кэшированные токены (storage.ErrTokenNotFound,
	// если кэш пуст)
	Status(ctx context.Context) (*storage.TokenData, error)

	// Logout удаляет кэшированные токены
	Logout(ctx context.Context) error
}

type service struct {
	apiClient       httpClient.ClientAPI
	tokens          storage.TokenStorage
	logger          *slog.Logger
	now             func() time.Time
	clientID        string
	clientSecret    string
	envRefreshToken string
}

// NewService creates a new auth service.
// envRefreshToken — refresh token из окружения; используется как fallback,
// когда кэш пуст (первый запуск без authorize).
func NewService(apiClient httpClient.ClientAPI, tokens storage.TokenStorage, clientID, clientSecret, envRefreshToken string, logger *slog.Logger) Service {
	return &service{
		apiClient:       apiClient,
		tokens:          tokens,
		logger:          logger,
		now:             time.Now,
		clientID:        clientID,
		clientSecret:    clientSecret,
		envRefreshToken: envRefreshToken,
	}
}

// AccessToken возвращает валидный access token
func (s *service) AccessToken(ctx context.Context) (string, error) {
	cached, err := s.tokens.GetToken(ctx)
	if err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return "", fmt.Errorf("failed to read token cache: %w", err)
	}

	if cached != nil && !cached.Expired(s.now()) {
		s.logger.Debug("Using cached access token", "expires_at", cached.ExpiresAt)
		return cached.AccessToken, nil
	}

	// Кэш пуст или access token истек — обновляемся по refresh token.
	// Кэшированный refresh token свежее того, что в окружении: Strava
	// ротирует его при каждом обмене.
	refreshToken := s.envRefreshToken
	if cached != nil && cached.RefreshToken != "" {
		refreshToken = cached.RefreshToken
	}
	if refreshToken == "" {
		return "", ErrNotAuthorized
	}

	s.logger.Info("Refreshing access token")

	resp, err := s.apiClient.ExchangeToken(ctx, api.TokenRequest{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		GrantType:    "refresh_token",
		RefreshToken: refreshToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	token := s.tokenData(resp)
	if err := s.tokens.SaveToken(ctx, token); err != nil {
		// Запуск продолжается со свежим токеном, просто без кэша
		s.logger.Warn("Failed to cache refreshed token", "error", err)
	}

	return resp.AccessToken, nil
}

// Authorize обменивает authorization code на токены и сохраняет их
func (s *service) Authorize(ctx context.Context, code string) (*storage.TokenData, error) {
	resp, err := s.apiClient.ExchangeToken(ctx, api.TokenRequest{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		GrantType:    "authorization_code",
		Code:         code,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	token := s.tokenData(resp)
	if err := s.tokens.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to save tokens: %w", err)
	}

	return token, nil
}

// Status возвращает кэшированные токены
func (s *service) Status(ctx context.Context) (*storage.TokenData, error) {
	return s.tokens.GetToken(ctx)
}

// Logout удаляет кэшированные токены
func (s *service) Logout(ctx context.Context) error {
	return s.tokens.DeleteToken(ctx)
}

// tokenData конвертирует ответ OAuth endpoint'а в структуру кэша
func (s *service) tokenData(resp *api.TokenResponse) *storage.TokenData {
	expiresAt := resp.ExpiresAt
	if expiresAt == 0 && resp.ExpiresIn > 0 {
		expiresAt = s.now().Unix() + resp.ExpiresIn
	}
	return &storage.TokenData{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt,
		ObtainedAt:   s.now().Unix(),
	}
}

// AuthorizationURL строит URL страницы согласия, которую пользователь
// открывает в браузере на первом шаге авторизации
func AuthorizationURL(clientID string) string {
	params := url.Values{}
	params.Set("client_id", clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", "http://localhost/exchange_token")
	params.Set("approval_prompt", "force")
	params.Set("scope", "activity:read")
	return "https://www.strava.com/oauth/authorize?" + params.Encode()
}
