package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	"github.com/novakb/novakb/backend/go-services/pkg/logger"
)

const (
	filePrefix = "doc-"
	fileExt    = ".html"
)

var (
	titleMarker = regexp.MustCompile(`<!-- Title: (.*?) -->`)
	idMarker    = regexp.MustCompile(`<!-- ID: (.*?) -->`)
	// strips single-line metadata comments only, like the client did
	commentLine = regexp.MustCompile(`<!--.*?-->\n?`)
)

// PushResult aggregates the per-document outcome of a push.
type PushResult struct {
	Pushed  int `json:"pushed"`
	Skipped int `json:"skipped"`
}

// Backup maps the document collection onto the repository's file-per-document
// layout and back. Each document lives at doc-<id>.html; the body is the raw
// HTML content prefixed by two metadata comment lines carrying title and id.
type Backup struct {
	configs   ConfigStore
	newClient ClientFactory
}

func NewBackup(configs ConfigStore, factory ClientFactory) *Backup {
	if factory == nil {
		factory = func(token string) Client {
			return NewHTTPClient(HTTPClientOptions{Token: token})
		}
	}
	return &Backup{configs: configs, newClient: factory}
}

func (b *Backup) config(ctx context.Context) (*Config, error) {
	cfg, err := b.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.Complete() {
		return nil, ErrConfigMissing
	}
	return cfg, nil
}

// Push uploads every document independently. A document that fails at the
// revision lookup or at the write only increments Skipped; the loop keeps
// going. The only error Push itself returns is the missing-config
// precondition (or a config store failure).
func (b *Backup) Push(ctx context.Context, docs []document.Document) (PushResult, error) {
	cfg, err := b.config(ctx)
	if err != nil {
		return PushResult{}, err
	}
	client := b.newClient(cfg.Token)

	var res PushResult
	for _, doc := range docs {
		path := fileName(doc.ID)
		encoded := base64.StdEncoding.EncodeToString([]byte(encodeBody(doc)))

		sha := ""
		if existing, err := client.GetFile(ctx, cfg.Owner, cfg.Repo, path); err != nil {
			if err != ErrNotFound {
				logger.Warnf("push: revision lookup for %s failed, skipping: %v", path, err)
				res.Skipped++
				continue
			}
			// not found: fresh file, upsert without a revision marker
		} else {
			sha = existing.SHA
		}

		title := doc.Title
		if title == "" {
			title = "Untitled"
		}
		message := "Update " + title
		if err := client.UpsertFile(ctx, cfg.Owner, cfg.Repo, path, message, encoded, sha); err != nil {
			logger.Warnf("push: upload of %s failed, skipping: %v", path, err)
			res.Skipped++
			continue
		}
		res.Pushed++
	}
	return res, nil
}

// Pull lists the repository root, fetches every doc-*.html file and decodes
// it back into a Document. Unlike Push, any failure (listing or any
// per-file fetch) aborts the whole pull; there is no partial result.
// Remote storage does not preserve modification times, so every pulled
// document is stamped with the pull time.
func (b *Backup) Pull(ctx context.Context) ([]document.Document, error) {
	cfg, err := b.config(ctx)
	if err != nil {
		return nil, err
	}
	client := b.newClient(cfg.Token)

	entries, err := client.ListDir(ctx, cfg.Owner, cfg.Repo, "")
	if err != nil {
		return nil, fmt.Errorf("list backup files: %w", err)
	}

	docs := make([]document.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.Type == "dir" || !strings.HasPrefix(entry.Name, filePrefix) || !strings.HasSuffix(entry.Name, fileExt) {
			continue
		}
		file, err := client.GetFile(ctx, cfg.Owner, cfg.Repo, entry.Path)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", entry.Path, err)
		}
		decoded, err := decodeContent(file.Content)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", entry.Path, err)
		}
		docs = append(docs, parseBody(entry.Name, decoded))
	}
	return docs, nil
}

func fileName(id string) string {
	return filePrefix + id + fileExt
}

func encodeBody(doc document.Document) string {
	return fmt.Sprintf("<!-- Title: %s -->\n<!-- ID: %s -->\n%s", doc.Title, doc.ID, doc.Content)
}

// decodeContent undoes the wire base64, which GitHub chunks with newlines.
func decodeContent(b64 string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' {
			return -1
		}
		return r
	}, b64)
	raw, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// parseBody recovers a Document from a backup file body. A missing id
// marker falls back to the id embedded in the filename; a missing title
// marker gets a fixed placeholder.
func parseBody(name, body string) document.Document {
	doc := document.Document{
		ID:        strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt),
		Title:     "Imported Document",
		UpdatedAt: document.Now(),
	}
	if m := idMarker.FindStringSubmatch(body); m != nil {
		doc.ID = m[1]
	}
	if m := titleMarker.FindStringSubmatch(body); m != nil {
		doc.Title = m[1]
	}
	doc.Content = commentLine.ReplaceAllString(body, "")
	return doc
}
