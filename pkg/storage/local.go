package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store saves uploaded images under a local root served as static files.
// URLs handed out look like /storage/<subdir>/<name>.
type Store struct {
	root      string
	publicURL string
}

func NewStore(root, publicURL string) *Store {
	return &Store{root: root, publicURL: strings.TrimRight(publicURL, "/")}
}

// Root is the directory static serving should be mounted on
func (s *Store) Root() string {
	return s.root
}

// Save writes an uploaded file under root/subdir with a unique name and
// returns its public URL.
func (s *Store) Save(file *multipart.FileHeader, subdir string) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.publicURL + "/" + subdir + "/" + name, nil
}

// Remove deletes the file behind a previously issued public URL. Unknown or
// already-removed URLs are ignored: the database row is the source of truth
// and a missing file should not fail the request.
func (s *Store) Remove(url string) {
	rel, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok {
		return
	}
	os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
}
