// Package blob stores uploaded image assets and resolves their public URLs.
// Assets are write-once: nothing in the application deletes or rewrites a key.
package blob

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// Store is an object store holding uploaded binaries under opaque keys.
type Store interface {
	// Put uploads the object at key. An existing object at the same key is
	// overwritten; keys include a timestamp component to make that unlikely.
	Put(ctx context.Context, key, contentType string, r io.Reader) error

	// PublicURL returns the publicly resolvable URL for an uploaded key.
	// The URL is assumed resolvable for as long as the object exists.
	PublicURL(key string) string
}

// cleanURL percent-escapes characters (notably spaces from original
// filenames) that would otherwise produce an invalid URL.
func cleanURL(raw string) string {
	raw = strings.ReplaceAll(raw, " ", "%20")
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return parsed.String()
}
