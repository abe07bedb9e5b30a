// Package docx patches word-processing documents stored as zip containers.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

// Ensure Patcher implements the interface.
var _ driven.ArchivePatcher = (*Patcher)(nil)

// Patcher rewrites one part of a document container.
// Untouched parts are copied without recompression, so their bytes and
// headers survive unchanged.
type Patcher struct{}

// New creates a new patcher.
func New() *Patcher {
	return &Patcher{}
}

// Patch applies transform to the named part and returns the new container.
func (p *Patcher) Patch(container []byte, part string, transform driven.MarkupTransform) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveCorrupt, err)
	}

	target := findPart(reader, part)
	if target == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrArchivePartMissing, part)
	}

	markup, err := readFile(target)
	if err != nil {
		return nil, err
	}
	patched, err := transform(markup)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", part, err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, file := range reader.File {
		if file != target {
			if err := w.Copy(file); err != nil {
				return nil, fmt.Errorf("%w: copy %s: %v", domain.ErrArchiveCorrupt, file.Name, err)
			}
			continue
		}

		header := file.FileHeader
		// The writer re-adds timestamp and size extras.
		header.Extra = nil
		fw, err := w.CreateHeader(&header)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", part, err)
		}
		if _, err := fw.Write(patched); err != nil {
			return nil, fmt.Errorf("write %s: %w", part, err)
		}
	}
	if reader.Comment != "" {
		if err := w.SetComment(reader.Comment); err != nil {
			return nil, fmt.Errorf("write comment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish container: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadPart returns the contents of one part of a container.
func ReadPart(container []byte, part string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveCorrupt, err)
	}
	file := findPart(reader, part)
	if file == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrArchivePartMissing, part)
	}
	return readFile(file)
}

func findPart(reader *zip.Reader, part string) *zip.File {
	for _, file := range reader.File {
		if file.Name == part {
			return file
		}
	}
	return nil
}

func readFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrArchiveCorrupt, file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrArchiveCorrupt, file.Name, err)
	}
	return content, nil
}
