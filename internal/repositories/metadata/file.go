package metadata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/filex"
)

const fileExt = ".json"

var validKey = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileRepository keeps every key in its own file under dir. Values are
// written to a temp file first and renamed over the target, so a reader
// never observes a half-written snapshot.
type FileRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFileRepository returns a FileRepository rooted at dir, creating it if needed.
func NewFileRepository(dir string) (*FileRepository, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileRepository{dir: abs}, nil
}

func (r *FileRepository) path(key string) (string, error) {
	if !validKey.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", common.ErrorInvalidKey, key)
	}
	return filepath.Join(r.dir, key+fileExt), nil
}

func (r *FileRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.path(key)
	if err != nil {
		return nil, err
	}
	b, err := filex.ReadFileIfExists(p)
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return b, nil
}

func (r *FileRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(p, value, 0o600); err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Rename(ctx context.Context, from, to string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, err := r.path(from)
	if err != nil {
		return err
	}
	dst, err := r.path(to)
	if err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("metadata[%s]: %w", from, common.ErrorNotFound)
		}
		return fmt.Errorf("failed to rename metadata[%s]: %w", from, err)
	}
	return nil
}

func (r *FileRepository) List(ctx context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}

	result := make(map[string][]byte)
	for _, e := range entries {
		key, ok := keyFromName(e)
		if !ok {
			continue
		}
		b, err := filex.ReadFileIfExists(filepath.Join(r.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata[%s]: %w", key, err)
		}
		if b != nil {
			result[key] = b
		}
	}
	return result, nil
}

func (r *FileRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	for _, e := range entries {
		if _, ok := keyFromName(e); !ok {
			continue
		}
		if err := os.Remove(filepath.Join(r.dir, e.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear metadata: %w", err)
		}
	}
	return nil
}

func keyFromName(e os.DirEntry) (string, bool) {
	if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
		return "", false
	}
	key := strings.TrimSuffix(e.Name(), fileExt)
	return key, validKey.MatchString(key)
}

var _ Repository = (*FileRepository)(nil)
