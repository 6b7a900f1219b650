// Package auth is a minimal credential store: an append-only file of
// username:hash lines. Passwords are hashed with a single unsalted
// round of SHA-256; credentials are immutable once created. This
// matches the on-disk format the rest of the dataset uses and is not a
// hardened authentication scheme.
package auth

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ipon-dev/ipon/internal/diag"
)

const usersFile = "users.txt"

// Store persists credentials under dir.
type Store struct {
	dir  string
	diag *diag.Logger
	mu   sync.Mutex
}

// NewStore creates a Store rooted at dir. log may be nil.
func NewStore(dir string, log *diag.Logger) *Store {
	return &Store{dir: dir, diag: log.WithComponent("auth")}
}

// SignUp records a new credential. It fails on a blank username or
// password, an existing username, or a write error.
func (s *Store) SignUp(username, password string) bool {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findUser(username); ok {
		return false
	}

	path := filepath.Join(s.dir, usersFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		s.diag.WriteFailed("sign up", path, err)
		return false
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s:%s\n", username, HashPassword(password)); err != nil {
		s.diag.WriteFailed("sign up", path, err)
		return false
	}
	return true
}

// Login reports whether the password matches the stored hash for the
// username.
func (s *Store) Login(username, password string) bool {
	stored, ok := s.findUser(username)
	return ok && stored == HashPassword(password)
}

// Exists reports whether a username is registered.
func (s *Store) Exists(username string) bool {
	_, ok := s.findUser(username)
	return ok
}

// HashPassword returns the lowercase hex SHA-256 digest of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *Store) findUser(username string) (string, bool) {
	f, err := os.Open(filepath.Join(s.dir, usersFile))
	if err != nil {
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.SplitN(sc.Text(), ":", 2)
		if len(parts) == 2 && parts[0] == username {
			return parts[1], true
		}
	}
	return "", false
}
