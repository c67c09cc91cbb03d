package github

import (
	"context"
	"errors"
)

// ErrNotFound is returned by GetFile when the path does not exist in the
// repository. Push treats it as "no prior revision"; any other lookup
// failure skips the document instead.
var ErrNotFound = errors.New("github: not found")

// File is a single repository file as returned by the contents API.
// Content is base64 as delivered on the wire; SHA is the revision marker the
// API requires to overwrite an existing file.
type File struct {
	Path    string
	SHA     string
	Content string
}

// Entry is one item of a directory listing.
type Entry struct {
	Name string
	Path string
	Type string // "file" or "dir"
}

// Client is the minimal contents-API surface the backup adapter needs. The
// real HTTP client and test doubles both implement it; nothing holds a
// client in package-level state.
type Client interface {
	GetFile(ctx context.Context, owner, repo, path string) (*File, error)
	ListDir(ctx context.Context, owner, repo, path string) ([]Entry, error)
	UpsertFile(ctx context.Context, owner, repo, path, message, contentB64, sha string) error
}

// ClientFactory builds a Client for a given access token. Injected into the
// backup service so tests can substitute doubles.
type ClientFactory func(token string) Client
