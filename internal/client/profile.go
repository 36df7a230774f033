package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ErrNoProfile is returned by Load when the profile file does not exist.
var ErrNoProfile = errors.New("profile not found")

// Profile is what the miner remembers between runs.
type Profile struct {
	AccountID string `mapstructure:"account_id"`
	Username  string `mapstructure:"username"`
}

// ProfileStore reads and writes a single YAML profile file.
type ProfileStore struct {
	path string
}

func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

func (s *ProfileStore) Path() string {
	return s.path
}

func (s *ProfileStore) Load() (*Profile, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoProfile
		}
		return nil, fmt.Errorf("stat profile: %w", err)
	}

	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if p.AccountID == "" {
		return nil, ErrNoProfile
	}
	return &p, nil
}

func (s *ProfileStore) Save(p Profile) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create profile dir: %w", err)
		}
	}

	v := s.newViper()
	v.Set("account_id", p.AccountID)
	v.Set("username", p.Username)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	return v
}
