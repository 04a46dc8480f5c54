package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"loyalty_admin/internal/config"

	"go.uber.org/zap"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

type Session struct {
	IsLoggedIn   bool
	AccessToken  string
	RefreshToken string
}

// Store holds the current token pair, mirrored to a token file so a new
// process starts logged in. LogIn and LogOut are the only transitions.
type Store struct {
	mu      sync.Mutex
	path    string
	logger  *zap.Logger
	session Session
}

func NewStore(cfg config.Config, logger *zap.Logger) *Store {
	s := &Store{
		path:   cfg.TokenFile,
		logger: logger.Named("session"),
	}

	access, refresh, err := readTokenFile(s.path)
	if err != nil {
		s.logger.Warn("could not read token file; starting logged out",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return s
	}

	s.session = Session{
		IsLoggedIn:   access != "",
		AccessToken:  access,
		RefreshToken: refresh,
	}
	return s
}

// LogIn overwrites any prior session unconditionally and persists both tokens.
func (s *Store) LogIn(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{
		IsLoggedIn:   true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	if err := writeTokenFile(s.path, accessToken, refreshToken); err != nil {
		return fmt.Errorf("persist tokens: %w", err)
	}
	s.logger.Info("logged in")
	return nil
}

// LogOut clears the session and removes both persisted entries. Idempotent.
func (s *Store) LogOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	s.logger.Info("logged out")
	return nil
}

func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) IsLoggedIn() bool {
	return s.Current().IsLoggedIn
}

// AccessToken returns the current access token, or "" when logged out.
func (s *Store) AccessToken() string {
	return s.Current().AccessToken
}

func readTokenFile(path string) (access, refresh string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", nil
		}
		return "", "", err
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return "", "", fmt.Errorf("parse token file: %w", err)
	}
	return entries[accessTokenKey], entries[refreshTokenKey], nil
}

func writeTokenFile(path, access, refresh string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	data, err := json.Marshal(map[string]string{
		accessTokenKey:  access,
		refreshTokenKey: refresh,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
