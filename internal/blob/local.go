package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Local stores objects as files under a root directory. The server mounts the
// directory at a URL prefix so uploaded keys resolve to public URLs.
type Local struct {
	root    string
	baseURL string
}

// NewLocal creates a directory-backed store. baseURL is the URL prefix the
// root directory is served under (for example "/uploads").
func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put writes the object to a file under the root directory.
func (l *Local) Put(_ context.Context, key, _ string, r io.Reader) error {
	dest, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("creating object directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating object file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dest)
		return fmt.Errorf("writing object: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing object file: %w", err)
	}
	return nil
}

// PublicURL returns the URL the object is served under.
func (l *Local) PublicURL(key string) string {
	return cleanURL(l.baseURL + "/" + key)
}

// Handler serves the stored objects, for mounting under the base URL prefix.
func (l *Local) Handler() http.Handler {
	return http.FileServer(http.Dir(l.root))
}

// resolve maps a key to a path inside the root, rejecting traversal attempts.
func (l *Local) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(l.root, filepath.FromSlash(clean)), nil
}
