package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/yevmiyelerim/yev/internal/logging"
	"github.com/yevmiyelerim/yev/internal/model"
)

// File names inside the data directory, one per record set.
const (
	WorkFile     = "work.json"
	PaymentsFile = "payments.json"
	JobsFile     = "jobs.json"
)

// FileBackend persists a snapshot as three human-readable JSON files.
type FileBackend struct {
	dir string
	log *slog.Logger
}

// NewFileBackend returns a backend rooted at dir. The directory is created on
// first save.
func NewFileBackend(dir string, logger *slog.Logger) *FileBackend {
	return &FileBackend{dir: dir, log: logging.For(logger, logging.ComponentStorage)}
}

// Dir returns the data directory.
func (b *FileBackend) Dir() string { return b.dir }

// Load reads all three files. Missing files yield empty record sets; a
// missing jobs file yields a nil catalog so the caller can seed it.
func (b *FileBackend) Load(ctx context.Context) (model.Snapshot, error) {
	var (
		work     map[string]model.WorkEntry
		payments map[string]model.PaymentEntry
		jobs     []model.Job
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.readJSON(ctx, WorkFile, &work) })
	g.Go(func() error { return b.readJSON(ctx, PaymentsFile, &payments) })
	g.Go(func() error { return b.readJSON(ctx, JobsFile, &jobs) })
	if err := g.Wait(); err != nil {
		return model.Snapshot{}, err
	}

	store := model.NewStore()
	if work != nil {
		store.Work = work
	}
	if payments != nil {
		store.Payments = payments
	}
	b.log.Debug("loaded data", logging.FieldPath, b.dir,
		"work", len(store.Work), "payments", len(store.Payments), "jobs", len(jobs))
	return model.Snapshot{Store: store, Jobs: jobs}, nil
}

// Save rewrites all three files. Either every file is replaced or, on
// error, the previous files are left as they were.
func (b *FileBackend) Save(ctx context.Context, snap model.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	work := snap.Store.Work
	if work == nil {
		work = map[string]model.WorkEntry{}
	}
	payments := snap.Store.Payments
	if payments == nil {
		payments = map[string]model.PaymentEntry{}
	}
	jobs := snap.Jobs
	if jobs == nil {
		jobs = []model.Job{}
	}

	// All temp files are written before any rename so a failed save leaves
	// the previous files in place.
	var staged []stagedFile
	discard := func() {
		for _, f := range staged {
			_ = os.Remove(f.tmp)
		}
	}
	for _, f := range []struct {
		name string
		v    any
	}{{WorkFile, work}, {PaymentsFile, payments}, {JobsFile, jobs}} {
		sf, err := b.stage(f.name, f.v)
		if err != nil {
			discard()
			return err
		}
		staged = append(staged, sf)
	}

	for i, f := range staged {
		if err := os.Rename(f.tmp, f.path); err != nil {
			discard()
			b.restore(staged[:i])
			return fmt.Errorf("storage error renaming temp file: %w", err)
		}
	}
	b.log.Debug("saved data", logging.FieldPath, b.dir)
	return nil
}

// stagedFile is a data file whose new content sits in tmp, waiting to be
// renamed over path. prev is the content it replaces.
type stagedFile struct {
	path    string
	tmp     string
	prev    []byte
	existed bool
}

// readJSON decodes dir/name into v. A missing file leaves v untouched.
// A corrupt file is renamed to *.corrupt and reported as an error.
func (b *FileBackend) readJSON(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(b.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage error reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// Back up corrupt file and abort.
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		b.log.Warn("corrupt data file moved aside", logging.FieldPath, path, logging.FieldError, err)
		return fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return nil
}

// stage writes v to dir/name.tmp and remembers the current content of
// dir/name.
func (b *FileBackend) stage(name string, v any) (stagedFile, error) {
	f := stagedFile{path: filepath.Join(b.dir, name)}
	f.tmp = f.path + ".tmp"

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return f, fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	prev, err := os.ReadFile(f.path)
	switch {
	case err == nil:
		f.prev, f.existed = prev, true
	case !errors.Is(err, fs.ErrNotExist):
		return f, fmt.Errorf("storage error reading %s: %w", f.path, err)
	}

	if err := os.WriteFile(f.tmp, data, 0o600); err != nil {
		_ = os.Remove(f.tmp)
		return f, fmt.Errorf("storage error writing temp file: %w", err)
	}
	return f, nil
}

// restore puts back the previous content of files that were already renamed.
func (b *FileBackend) restore(done []stagedFile) {
	for _, f := range done {
		var err error
		if f.existed {
			if err = os.WriteFile(f.tmp, f.prev, 0o600); err == nil {
				err = os.Rename(f.tmp, f.path)
			}
		} else {
			err = os.Remove(f.path)
		}
		if err != nil {
			_ = os.Remove(f.tmp)
			b.log.Error("could not roll back data file", logging.FieldPath, f.path, logging.FieldError, err)
		}
	}
}
