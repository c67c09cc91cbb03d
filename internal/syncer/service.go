package syncer

import (
	"context"
	"encoding/json"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	docservice "github.com/novakb/novakb/backend/go-services/internal/document/service"
	"github.com/novakb/novakb/backend/go-services/internal/github"
	"github.com/novakb/novakb/backend/go-services/pkg/logger"
	"github.com/novakb/novakb/backend/go-services/pkg/metrics"
)

// Archiver receives a pre-merge copy of the local collection before a pull
// overwrites it. Optional.
type Archiver interface {
	SaveSnapshot(ctx context.Context, name string, payload []byte) error
}

// Service drives manual sync: push the full local set, or pull the full
// remote set, merge it in and persist the result as the new local truth.
type Service struct {
	store   *docservice.Service
	backup  *github.Backup
	archive Archiver
}

func NewService(store *docservice.Service, backup *github.Backup) *Service {
	return &Service{store: store, backup: backup}
}

// SetArchiver wires the optional pre-merge snapshot archive.
func (s *Service) SetArchiver(a Archiver) { s.archive = a }

// Push uploads every local document. Per-document failures are already
// folded into the skipped count by the backup adapter; only precondition
// and store failures surface as errors.
func (s *Service) Push(ctx context.Context) (github.PushResult, error) {
	docs, err := s.store.GetAll(ctx)
	if err != nil {
		return github.PushResult{}, err
	}
	res, err := s.backup.Push(ctx, docs)
	if err != nil {
		return github.PushResult{}, err
	}
	metrics.SyncDocumentsPushed.Add(float64(res.Pushed))
	metrics.SyncDocumentsSkipped.Add(float64(res.Skipped))
	return res, nil
}

// Pull fetches the remote set, merges it over the local one (pulled wins by
// id) and persists the merged collection wholesale. Any pull failure aborts
// before local state is touched. When an archive is configured the current
// local collection is snapshotted first, since the merge overwrite is
// destructive for documents the remote also holds.
func (s *Service) Pull(ctx context.Context) ([]document.Document, error) {
	pulled, err := s.backup.Pull(ctx)
	if err != nil {
		return nil, err
	}
	local, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.archive != nil && len(local) > 0 {
		if raw, err := json.Marshal(local); err == nil {
			if err := s.archive.SaveSnapshot(ctx, "pre-merge", raw); err != nil {
				logger.Warnf("pre-merge snapshot failed: %v", err)
			}
		}
	}

	merged := document.Merge(local, pulled)
	if err := s.store.SaveAll(ctx, merged); err != nil {
		return nil, err
	}
	metrics.SyncDocumentsPulled.Add(float64(len(pulled)))
	return merged, nil
}
