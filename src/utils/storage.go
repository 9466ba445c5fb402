package utils

import (
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// AttachmentStore writes uploaded files under a root directory and hands back
// relative paths for storage in records. Paths stay relative; URLs are built
// at read time.
type AttachmentStore struct {
	Root string
}

func NewAttachmentStore(root string) *AttachmentStore {
	return &AttachmentStore{Root: root}
}

// Save persists one upload under <root>/<subdir>/ with a timestamp-prefixed,
// sanitized filename and returns the relative path (e.g. "requests/20250101120000_map.pdf").
// Failures come back as STORAGE_ERROR so they reach clients through the envelope.
func (s *AttachmentStore) Save(file *multipart.FileHeader, subdir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", StorageError("Could not read uploaded file", "تعذر قراءة الملف المرفوع")
	}
	defer src.Close()

	dir := filepath.Join(s.Root, filepath.FromSlash(subdir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", StorageError("Could not create upload directory", "تعذر إنشاء مجلد الرفع")
	}

	name := time.Now().UTC().Format("20060102150405") + "_" + SanitizeFilename(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", StorageError("Could not save file", "تعذر حفظ الملف")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", StorageError("Could not save file", "تعذر حفظ الملف")
	}

	return path.Join(subdir, name), nil
}

// Remove deletes a previously stored file. Missing files are not an error.
func (s *AttachmentStore) Remove(relPath string) {
	if relPath == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.Root, filepath.FromSlash(relPath)))
}

// SanitizeFilename strips directories and replaces spaces, matching the stored
// path convention.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}

// FileURL resolves a stored relative path against the server base URL and the
// static mount point.
func FileURL(baseURL, relPath string) string {
	if relPath == "" {
		return ""
	}
	encoded := url.PathEscape(relPath)
	encoded = strings.ReplaceAll(encoded, "%2F", "/")
	return strings.TrimRight(baseURL, "/") + "/static/" + encoded
}
