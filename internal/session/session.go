package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	inErrors "github.com/pttech/storefront/internal/errors"
	"github.com/pttech/storefront/internal/log"
	"github.com/pttech/storefront/internal/otel"
)

// Session mirrors the two fixed keys the mobile client keeps in local
// storage after login.
type Session struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken"`
}

type Store struct {
	mu   sync.RWMutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pttech", "session.json")
}

func (s *Store) Login(c context.Context, userID string, accessToken string) error {
	c, span := otel.Tracer.Start(c, "SessionStore Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore Login").
		Str(log.KeyUserID, userID).
		Str(log.KeySessionFile, s.path).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	logger = logger.With().Str(log.KeyProcess, "writing session file").Logger()
	logger.Info().Msg("writing session file")
	body, err := json.Marshal(Session{UserID: userID, AccessToken: accessToken})
	if err != nil {
		err = fmt.Errorf("failed marshaling session with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		err = fmt.Errorf("failed creating session directory with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	if err = os.WriteFile(s.path, body, 0o600); err != nil {
		err = fmt.Errorf("failed writing session file with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("wrote session file")

	return nil
}

func (s *Store) Logout(c context.Context) error {
	c, span := otel.Tracer.Start(c, "SessionStore Logout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore Logout").
		Str(log.KeySessionFile, s.path).
		Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	logger = logger.With().Str(log.KeyProcess, "removing session file").Logger()
	logger.Info().Msg("removing session file")
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		err = fmt.Errorf("failed removing session file with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("removed session file")

	return nil
}

// Current reads the session point-in-time from disk. The access token is
// parsed unverified only to surface expiry, the backend stays authoritative.
func (s *Store) Current(c context.Context) (Session, error) {
	c, span := otel.Tracer.Start(c, "SessionStore Current")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SessionStore Current").
		Str(log.KeySessionFile, s.path).
		Logger()

	s.mu.RLock()
	defer s.mu.RUnlock()

	body, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("session file not found")
			return Session{}, inErrors.ErrNoSession
		}
		err = fmt.Errorf("failed reading session file with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Session{}, err
	}

	sess := Session{}
	if err = json.Unmarshal(body, &sess); err != nil {
		err = fmt.Errorf("failed unmarshaling session file with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Session{}, err
	}
	if sess.UserID == "" || sess.AccessToken == "" {
		logger.Debug().Msg("session file is incomplete")
		return Session{}, inErrors.ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(sess.AccessToken, &claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			logger.Warn().
				Time("expiredAt", claims.ExpiresAt.Time).
				Msg("access token is past its expiry, backend calls will likely be rejected")
		}
	}

	return sess, nil
}
