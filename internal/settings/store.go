// Package settings persists user preferences as key=value lines with
// documented defaults, and owns the destructive reset of the other
// data stores.
package settings

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ipon-dev/ipon/internal/diag"
)

const settingsFile = "settings.txt"

// Recognized keys.
const (
	KeyDisplayName = "display_name"
	KeyEmail       = "email"
	KeyCurrency    = "currency"
	KeyDateFormat  = "date_format"
	KeyThemeMode   = "theme_mode"
	KeyAccentColor = "accent_color"
)

var defaults = map[string]string{
	KeyDisplayName: "User",
	KeyEmail:       "user@example.com",
	KeyCurrency:    "PHP (₱)",
	KeyDateFormat:  "YYYY-MM-DD",
	KeyThemeMode:   "light",
	KeyAccentColor: "Green",
}

// dataFiles are the stores wiped by ResetAllData. Settings and
// credentials survive a reset.
var dataFiles = []string{
	"balance.txt",
	"transactions.txt",
	"budgets.txt",
	"categories.txt",
}

// Store persists settings under dir. Sets rewrite the whole file; the
// mutex serializes them within one process.
type Store struct {
	dir  string
	diag *diag.Logger
	mu   sync.Mutex
}

// NewStore creates a Store rooted at dir. log may be nil.
func NewStore(dir string, log *diag.Logger) *Store {
	return &Store{dir: dir, diag: log.WithComponent("settings")}
}

// Get returns the stored value for key, falling back to the documented
// default. ok is false only for an unrecognized key with no stored
// value.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.All()[key]
	return v, ok
}

// All returns every setting, seeded with the defaults and overridden by
// whatever is stored. Arbitrary keys in the file are tolerated.
func (s *Store) All() map[string]string {
	all := make(map[string]string, len(defaults))
	for k, v := range defaults {
		all[k] = v
	}

	f, err := os.Open(s.path())
	if err != nil {
		return all
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.SplitN(sc.Text(), "=", 2)
		if len(parts) != 2 {
			continue
		}
		all[parts[0]] = parts[1]
	}
	return all
}

// Set stores a value for key, rewriting the whole store. Later writes
// to the same key win. A failed rewrite is reported to the diagnostic
// channel and swallowed.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.All()
	all[key] = value

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(all[k])
		b.WriteByte('\n')
	}

	path := s.path()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		s.diag.WriteFailed("rewrite settings", tmp, err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		s.diag.WriteFailed("rewrite settings", path, err)
	}
}

// ResetAllData deletes the ledger, budget, and category stores under
// dir, best effort. Settings and credentials are untouched. Returns
// false if any existing file could not be removed; there is no
// rollback, so partial deletion is possible.
func (s *Store) ResetAllData() bool {
	ok := true
	for _, name := range dataFiles {
		path := filepath.Join(s.dir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.diag.WriteFailed("reset data", path, err)
			ok = false
		}
	}
	return ok
}

func (s *Store) path() string {
	return filepath.Join(s.dir, settingsFile)
}
