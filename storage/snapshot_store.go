package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"roomcast/domain"
	"roomcast/errors"
	"time"
)

const snapshotExt = ".json"

// FileSnapshotStore keeps one JSON document per player under dir.
// Writes go to a temp file in the same directory and are renamed over the
// previous document, so a reader never observes a partial write.
type FileSnapshotStore struct {
	dir string
	log *slog.Logger
}

func NewFileSnapshotStore(dir string, log *slog.Logger) (*FileSnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}
	return &FileSnapshotStore{dir: dir, log: log}, nil
}

// Path returns the document location of a player.
// Player ids are escaped so they can never leave dir.
func (s *FileSnapshotStore) Path(playerID domain.PlayerID) string {
	return filepath.Join(s.dir, url.PathEscape(string(playerID))+snapshotExt)
}

// Load reads the snapshot of a player. A missing file is an empty snapshot.
func (s *FileSnapshotStore) Load(ctx context.Context, playerID domain.PlayerID) (domain.MuteSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.MuteSnapshot{}, err
	}
	data, err := os.ReadFile(s.Path(playerID))
	if stderrors.Is(err, fs.ErrNotExist) {
		return domain.NewMuteSnapshot(playerID), nil
	}
	if err != nil {
		return domain.MuteSnapshot{}, fmt.Errorf("%w: read snapshot %s: %v", errors.ErrPersistenceFailure, playerID, err)
	}

	snapshot := domain.NewMuteSnapshot(playerID)
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return domain.MuteSnapshot{}, fmt.Errorf("%w: %s: %v", errors.ErrMalformedSnapshot, playerID, err)
	}
	if snapshot.PlayerID != playerID {
		return domain.MuteSnapshot{}, fmt.Errorf("%w: %s: document belongs to %q",
			errors.ErrMalformedSnapshot, playerID, snapshot.PlayerID)
	}
	normalize(&snapshot)
	return snapshot, nil
}

// Save writes the snapshot atomically.
func (s *FileSnapshotStore) Save(ctx context.Context, snapshot domain.MuteSnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot.PlayerID == "" {
		return fmt.Errorf("%w: snapshot without player id", errors.ErrPersistenceFailure)
	}
	if snapshot.SavedAt.IsZero() {
		snapshot.SavedAt = time.Now().UTC()
	}
	normalize(&snapshot)

	tmp, err := os.CreateTemp(s.dir, "snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp snapshot: %v", errors.ErrPersistenceFailure, err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err = enc.Encode(snapshot); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write snapshot %s: %v", errors.ErrPersistenceFailure, snapshot.PlayerID, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: sync snapshot %s: %v", errors.ErrPersistenceFailure, snapshot.PlayerID, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close snapshot %s: %v", errors.ErrPersistenceFailure, snapshot.PlayerID, err)
	}
	if err = os.Rename(tmp.Name(), s.Path(snapshot.PlayerID)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace snapshot %s: %v", errors.ErrPersistenceFailure, snapshot.PlayerID, err)
	}
	s.log.Debug("Snapshot saved", "player", snapshot.PlayerID, "path", s.Path(snapshot.PlayerID))
	return nil
}

// List returns the ids of every player with a stored snapshot.
func (s *FileSnapshotStore) List() ([]domain.PlayerID, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list snapshots: %v", errors.ErrPersistenceFailure, err)
	}
	var ids []domain.PlayerID
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != snapshotExt {
			continue
		}
		id, err := url.PathUnescape(name[:len(name)-len(snapshotExt)])
		if err != nil {
			s.log.Warn("Skipping snapshot with unreadable name", "file", name)
			continue
		}
		ids = append(ids, domain.PlayerID(id))
	}
	return ids, nil
}

// normalize replaces nil maps so that decoded "null" values behave like empty ones.
func normalize(snapshot *domain.MuteSnapshot) {
	if snapshot.PersonalMutes == nil {
		snapshot.PersonalMutes = make(map[domain.PlayerID]domain.MuteRecord)
	}
	if snapshot.ChannelMutes == nil {
		snapshot.ChannelMutes = make(map[domain.Channel]domain.ChannelMuteRecord)
	}
	if snapshot.GlobalMutes == nil {
		snapshot.GlobalMutes = make(map[domain.PlayerID]domain.GlobalMuteRecord)
	}
}
