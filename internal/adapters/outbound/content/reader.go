package content

import (
	"io"
	"os"
	"path/filepath"
)

// excerptSize caps how much of a module is read for marker detection.
// Layer markers are author annotations near the top of the file.
const excerptSize = 2000

// FileReader implements domain.ContentReader against the filesystem.
type FileReader struct{}

func New() *FileReader {
	return &FileReader{}
}

// Excerpt returns up to the first 2000 bytes of a module. A file that cannot
// be opened or read reports ok=false; the classifier then degrades to
// path-based classification.
func (r *FileReader) Excerpt(rootPath, relPath string) (string, bool) {
	f, err := os.Open(filepath.Join(rootPath, filepath.FromSlash(relPath)))
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, excerptSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", false
	}
	return string(buf[:n]), true
}
