package wire

import (
	"os"
	"path/filepath"
)

// UploadedFile is an immutable multipart/form-data file part.
//
// Grounded on source/include/UploadedFile.h, including its Save
// behavior (create missing parent directories, write the bytes,
// report success/failure rather than throwing) — carried forward per
// SPEC_FULL.md's supplemented-features list.
type UploadedFile struct {
	FieldName   string
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the number of bytes in the uploaded file.
func (f UploadedFile) Size() int { return len(f.Data) }

// Save writes the file's bytes to path, creating any missing parent
// directories. It reports whether the write succeeded, matching
// UploadedFile::save's swallow-the-error-into-a-bool contract.
func (f UploadedFile) Save(path string) bool {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false
		}
	}
	return os.WriteFile(path, f.Data, 0o644) == nil
}
