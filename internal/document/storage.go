package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Store manages the per-employee document folders under a single root.
// Folders are keyed by the employee's display name.
type Store interface {
	FolderPath(folder string) string
	CopyIn(folder, srcPath string) (string, error)
	Write(folder, filename string, src io.Reader) (string, error)
	List(folder string) ([]string, error)
	Remove(folder, filename string) error
	RemoveFolder(folder string) error
}

type store struct {
	root   string
	logger *zap.Logger
}

func NewStore(root string, logger ...*zap.Logger) Store {
	l := zap.L().Named("document.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.store")
	}
	return &store{root: root, logger: l}
}

func (s *store) FolderPath(folder string) string {
	return filepath.Join(s.root, folder)
}

// CopyIn copies srcPath into the employee folder. An existing file with the
// same name is never overwritten: the copy gets a " - copyN" suffix instead.
func (s *store) CopyIn(folder, srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	return s.Write(folder, filepath.Base(srcPath), src)
}

func (s *store) Write(folder, filename string, src io.Reader) (string, error) {
	// Uploaded filenames are client input; keep only the base name so a
	// name with path separators cannot land outside the folder.
	filename = filepath.Base(filename)

	dir := s.FolderPath(folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst := filepath.Join(dir, filename)
	for n := 1; ; n++ {
		if _, err := os.Stat(dst); os.IsNotExist(err) {
			break
		}
		ext := filepath.Ext(filename)
		base := strings.TrimSuffix(filename, ext)
		dst = filepath.Join(dir, fmt.Sprintf("%s - copy%d%s", base, n, ext))
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func (s *store) List(folder string) ([]string, error) {
	entries, err := os.ReadDir(s.FolderPath(folder))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *store) Remove(folder, filename string) error {
	return os.Remove(filepath.Join(s.FolderPath(folder), filepath.Base(filename)))
}

// RemoveFolder is best-effort: a failure is logged, never fatal, because
// the owning DB row is already gone by the time this runs.
func (s *store) RemoveFolder(folder string) error {
	if strings.TrimSpace(folder) == "" {
		return nil
	}
	if err := os.RemoveAll(s.FolderPath(folder)); err != nil {
		s.logger.Warn("remove document folder failed",
			zap.String("folder", folder),
			zap.Error(err),
		)
		return err
	}
	return nil
}
