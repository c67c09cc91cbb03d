package syncer

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	"github.com/novakb/novakb/backend/go-services/internal/document/repository"
	docservice "github.com/novakb/novakb/backend/go-services/internal/document/service"
	"github.com/novakb/novakb/backend/go-services/internal/github"
)

type stubClient struct {
	files map[string]*github.File
}

func (s *stubClient) GetFile(ctx context.Context, owner, repo, path string) (*github.File, error) {
	if f, ok := s.files[path]; ok {
		return f, nil
	}
	return nil, github.ErrNotFound
}

func (s *stubClient) ListDir(ctx context.Context, owner, repo, path string) ([]github.Entry, error) {
	out := []github.Entry{}
	for p := range s.files {
		out = append(out, github.Entry{Name: p, Path: p, Type: "file"})
	}
	return out, nil
}

func (s *stubClient) UpsertFile(ctx context.Context, owner, repo, path, message, contentB64, sha string) error {
	s.files[path] = &github.File{Path: path, SHA: "new", Content: contentB64}
	return nil
}

type recordingArchive struct {
	names []string
}

func (r *recordingArchive) SaveSnapshot(ctx context.Context, name string, payload []byte) error {
	r.names = append(r.names, name)
	return nil
}

func remoteFile(t *testing.T, id, title, content string) *github.File {
	t.Helper()
	body := "<!-- Title: " + title + " -->\n<!-- ID: " + id + " -->\n" + content
	return &github.File{
		Path:    "doc-" + id + ".html",
		Content: base64.StdEncoding.EncodeToString([]byte(body)),
	}
}

func newTestSyncer(t *testing.T, client github.Client) (*Service, *docservice.Service) {
	t.Helper()
	store := docservice.NewService(repository.NewMemoryRepo())
	configs := github.NewMemoryConfigStore()
	require.NoError(t, configs.Save(context.Background(), &github.Config{Token: "t", Owner: "o", Repo: "r"}))
	backup := github.NewBackup(configs, func(token string) github.Client { return client })
	return NewService(store, backup), store
}

func TestPush_UploadsFullLocalSet(t *testing.T) {
	client := &stubClient{files: map[string]*github.File{}}
	s, store := newTestSyncer(t, client)
	ctx := context.Background()

	_, err := store.Create(ctx, "One", "<p>1</p>")
	require.NoError(t, err)
	_, err = store.Create(ctx, "Two", "<p>2</p>")
	require.NoError(t, err)

	res, err := s.Push(ctx)
	require.NoError(t, err)
	// two created notes plus the seeded welcome document
	require.Equal(t, 3, res.Pushed)
	require.Equal(t, 0, res.Skipped)
	require.Len(t, client.files, 3)
}

func TestPull_MergesAndPersistsSortedByUpdatedAt(t *testing.T) {
	client := &stubClient{files: map[string]*github.File{}}
	s, store := newTestSyncer(t, client)
	ctx := context.Background()

	local, err := store.GetAll(ctx)
	require.NoError(t, err)
	welcomeID := local[0].ID

	client.files["doc-"+welcomeID+".html"] = remoteFile(t, welcomeID, "Remote Welcome", "<p>remote</p>")
	client.files["doc-other.html"] = remoteFile(t, "other", "Other", "<p>o</p>")

	merged, err := s.Pull(ctx)
	require.NoError(t, err)
	require.Len(t, merged, 2)

	byID := map[string]document.Document{}
	for _, d := range merged {
		byID[d.ID] = d
	}
	// pulled copy replaced the local welcome document
	require.Equal(t, "Remote Welcome", byID[welcomeID].Title)
	require.Equal(t, "<p>remote</p>", byID[welcomeID].Content)

	// merge output became the authoritative local state
	persisted, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, merged, persisted)
}

func TestPull_TakesPreMergeSnapshot(t *testing.T) {
	client := &stubClient{files: map[string]*github.File{
		"doc-a.html": remoteFile(t, "a", "A", "<p>a</p>"),
	}}
	s, store := newTestSyncer(t, client)
	archive := &recordingArchive{}
	s.SetArchiver(archive)
	ctx := context.Background()

	_, err := store.GetAll(ctx) // seed welcome
	require.NoError(t, err)

	_, err = s.Pull(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"pre-merge"}, archive.names)
}

func TestPull_MissingConfigLeavesLocalStateUntouched(t *testing.T) {
	store := docservice.NewService(repository.NewMemoryRepo())
	backup := github.NewBackup(github.NewMemoryConfigStore(), func(token string) github.Client {
		return &stubClient{files: map[string]*github.File{}}
	})
	s := NewService(store, backup)
	ctx := context.Background()

	before, err := store.GetAll(ctx)
	require.NoError(t, err)

	_, err = s.Pull(ctx)
	require.ErrorIs(t, err, github.ErrConfigMissing)

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}
