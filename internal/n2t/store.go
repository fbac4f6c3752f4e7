// Package n2t reports the status of a Nand2Tetris assignment by running the
// Hardware Simulator over every .tst script in a directory. It owns the
// small key=value configuration file that remembers where the simulator
// lives, and the report runner that drives it.
package n2t

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single key=value pair from the configuration file
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Store is the in-memory view of one configuration file. Entries keep the
// order in which keys were first seen; a repeated key keeps its position
// and takes the last value.
type Store struct {
	path   string
	keys   []string
	values map[string]string
}

// DefaultConfigPath returns the .n2trc file beside the n2tstatus binary
func DefaultConfigPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate n2tstatus executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ConfigFileName), nil
}

// ResolveConfigPath picks the explicit configuration path, if any.
// Precedence: --config flag > N2T_CONFIG > "" (the default beside the binary)
func ResolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(ConfigEnvVar)
}

// Open loads the configuration stored at path, creating an empty file if
// none exists. An empty path selects DefaultConfigPath. An explicit path
// must live in an existing directory the process can read and write.
func Open(path string) (*Store, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	} else {
		if err := checkConfigDir(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}

	s := &Store{path: path, values: map[string]string{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// checkConfigDir verifies dir exists and is readable and writable
func checkConfigDir(dir string) error {
	hint := fmt.Sprintf("Create %s or pass a --config path in a writable directory", dir)

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewPathErrorWithHint("open config directory", dir,
				fmt.Errorf("%w: does not exist", ErrDirectoryUnavailable), hint)
		}
		return NewPathErrorWithHint("open config directory", dir,
			fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err), hint)
	}
	if !info.IsDir() {
		return NewPathErrorWithHint("open config directory", dir,
			fmt.Errorf("%w: not a directory", ErrDirectoryUnavailable), hint)
	}
	if !canReadWrite(dir) {
		return NewPathErrorWithHint("open config directory", dir,
			fmt.Errorf("%w: not readable and writable", ErrDirectoryUnavailable),
			fmt.Sprintf("Check the permissions of %s", dir))
	}
	return nil
}

// Path returns the backing file of the store
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.keys)
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Set stores value under key in memory. Call Persist to write it out.
func (s *Store) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Contains reports whether key is present
func (s *Store) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Entries returns a snapshot of all entries in insertion order
func (s *Store) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, key := range s.keys {
		entries = append(entries, Entry{Key: key, Value: s.values[key]})
	}
	return entries
}

// Persist rewrites the configuration file with every entry and reloads it,
// so the store always reflects what is on disk afterwards. Entries the
// format cannot represent are rejected before anything is written.
func (s *Store) Persist() error {
	var b strings.Builder
	for _, key := range s.keys {
		value := s.values[key]
		if err := validateEntry(key, value); err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s=%s\n", key, value)
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return NewPathErrorWithHint("write config", s.path, err,
			fmt.Sprintf("Check the permissions of %s", filepath.Dir(s.path)))
	}
	logger.Debug("persisted config", "path", s.path, "entries", len(s.keys))

	return s.load()
}

// validateEntry rejects keys and values that would not survive a round trip
func validateEntry(key, value string) error {
	const hint = "Keys must be non-empty, must not start with '#' and must not contain '=' or newlines; values must be a single line"
	trimmed := strings.TrimSpace(key)
	switch {
	case trimmed == "":
		return NewValidationErrorWithHint("config key", key, "must not be empty", hint)
	case strings.HasPrefix(trimmed, "#"):
		// the parser would read the line back as a comment
		return NewValidationErrorWithHint("config key", key, "must not start with '#'", hint)
	case strings.ContainsAny(key, "=\r\n"):
		return NewValidationErrorWithHint("config key", key, "must not contain '=' or a newline", hint)
	case strings.ContainsAny(value, "\r\n"):
		return NewValidationErrorWithHint("config value", value, "must not contain a newline", hint)
	}
	return nil
}

// load replaces the in-memory entries with the contents of the file. A
// missing file is created empty. On error the current entries are kept.
func (s *Store) load() error {
	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(s.path, nil, 0644); err != nil {
			return NewPathErrorWithHint("create config", s.path, err,
				"Pass a --config path in a writable directory")
		}
		logger.Debug("created empty config", "path", s.path)
		s.keys, s.values = nil, map[string]string{}
		return nil
	}
	if err != nil {
		return NewPathError("stat config", s.path, err)
	}
	if info.IsDir() {
		return NewPathError("read config", s.path, fmt.Errorf("%w: is a directory", ErrInvalidConfig))
	}
	if !canRead(s.path) {
		return NewPathErrorWithHint("read config", s.path, ErrPermissionDenied,
			fmt.Sprintf("Run 'chmod u+r %s'", s.path))
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return NewPathErrorWithHint("read config", s.path, ErrPermissionDenied,
				fmt.Sprintf("Run 'chmod u+r %s'", s.path))
		}
		return NewPathError("read config", s.path, err)
	}

	keys, values, err := parseConfig(s.path, string(data))
	if err != nil {
		return err
	}
	s.keys, s.values = keys, values
	logger.Debug("loaded config", "path", s.path, "entries", len(keys))
	return nil
}

// parseConfig parses key=value lines. Blank lines and lines whose first
// non-space character is '#' are skipped; everything else must contain '='.
// Only the first '=' separates key from value.
func parseConfig(path, data string) ([]string, map[string]string, error) {
	var keys []string
	values := map[string]string{}

	for lineNum, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, nil, &ParseError{Path: path, Line: lineNum + 1, Text: raw}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = value
	}

	return keys, values, nil
}
