package modelstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
)

const (
	// DefaultDir is the cache directory used when neither WithDir nor the
	// environment override it.
	DefaultDir = "./models"

	// EnvDir names the environment variable that overrides the cache
	// directory.
	EnvDir = "GEMRANK_MODELS_DIR"
)

var (
	// ErrUnknownModel is returned by Fetch for names not in the registry.
	ErrUnknownModel = errors.New("modelstore: unknown model name")

	// ErrDownloadFailed is returned when the upstream responds with an
	// HTTP error status.
	ErrDownloadFailed = errors.New("modelstore: model download failed")
)

// entry describes one managed model: where to get it, what to call the
// local file, and an optional rewrite of the response body.
type entry struct {
	url     string
	file    string
	process func([]byte) []byte
}

var registry = map[string]entry{
	"recon3d": {
		url:  "http://bigg.ucsd.edu/api/v2/models/Recon3D/download",
		file: "recon3d.json",
		// BiGG suffixes gene IDs with _AT transcript-variant markers;
		// expression tables use dotted IDs.
		process: func(body []byte) []byte {
			return bytes.ReplaceAll(body, []byte("_AT"), []byte("."))
		},
	},
	"ratgem": {
		url:  "https://github.com/SysBioChalmers/Rat-GEM/raw/refs/heads/main/model/Rat-GEM.mat",
		file: "ratgem.mat",
	},
}

// Store caches managed model files in a local directory.
type Store struct {
	dir    string
	client *http.Client
	log    *slog.Logger
}

// Option adjusts Store construction.
type Option func(*Store)

// WithDir sets the cache directory, taking precedence over the
// environment and the default. Empty strings are ignored.
func WithDir(dir string) Option {
	return func(s *Store) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithClient sets the HTTP client used for downloads. A nil client is
// ignored.
func WithClient(c *http.Client) Option {
	return func(s *Store) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLogger routes store diagnostics to log. A nil logger is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New builds a Store. The directory is created lazily on first download,
// not here, so constructing a store has no filesystem side effects.
func New(opts ...Option) *Store {
	dir := DefaultDir
	if env := os.Getenv(EnvDir); env != "" {
		dir = env
	}
	s := &Store{dir: dir, client: http.DefaultClient, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the cache directory.
func (s *Store) Dir() string { return s.dir }

// Known returns the managed model names in sorted order.
func Known() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is a managed model.
func IsKnown(name string) bool {
	_, ok := registry[name]
	return ok
}

// Path returns the local file a managed model occupies once fetched. It
// does not check whether the file exists yet.
func (s *Store) Path(name string) (string, error) {
	ent, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownModel, name, Known())
	}
	return filepath.Join(s.dir, ent.file), nil
}

// Fetch returns the local path of a managed model, downloading it first
// when it is not cached yet.
func (s *Store) Fetch(ctx context.Context, name string) (string, error) {
	ent, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: %v)", ErrUnknownModel, name, Known())
	}
	path := filepath.Join(s.dir, ent.file)
	if _, err := os.Stat(path); err == nil {
		s.log.Debug("modelstore: cache hit", "model", name, "path", path)
		return path, nil
	}
	if err := s.download(ctx, name, ent, path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) download(ctx context.Context, name string, ent entry, path string) error {
	s.log.Info("modelstore: downloading model", "model", name, "url", ent.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ent.url, nil)
	if err != nil {
		return fmt.Errorf("modelstore: building request for %s: %w", name, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDownloadFailed, name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s: status %s", ErrDownloadFailed, name, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDownloadFailed, name, err)
	}
	if ent.process != nil {
		body = ent.process(body)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("modelstore: creating cache directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("modelstore: saving %s: %w", name, err)
	}
	s.log.Info("modelstore: model cached", "model", name, "path", path, "bytes", len(body))
	return nil
}

// Wipe deletes every managed model file and then the cache directory
// itself. The directory removal fails if unmanaged files moved in, which
// is the point: Wipe never deletes anything it did not put there.
func (s *Store) Wipe() error {
	for name, ent := range registry {
		path := filepath.Join(s.dir, ent.file)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("modelstore: deleting %s: %w", name, err)
		}
	}
	if err := os.Remove(s.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("modelstore: removing cache directory: %w", err)
	}
	return nil
}
