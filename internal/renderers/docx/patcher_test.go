package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/core/domain"
	"github.com/custodia-labs/kokua-cli/internal/core/ports/driven"
)

const documentPart = "word/document.xml"

type testPart struct {
	name    string
	content string
	method  uint16
}

// createTestContainer creates a zip container with the given parts.
func createTestContainer(t *testing.T, parts ...testPart) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	modified := time.Date(2023, 5, 1, 9, 30, 0, 0, time.UTC)
	for _, p := range parts {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: p.name, Method: p.method, Modified: modified})
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func rawEntries(t *testing.T, container []byte) map[string][]byte {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	require.NoError(t, err)
	out := make(map[string][]byte)
	for _, f := range r.File {
		rc, err := f.OpenRaw()
		require.NoError(t, err)
		b := new(bytes.Buffer)
		_, err = b.ReadFrom(rc)
		require.NoError(t, err)
		out[f.Name] = b.Bytes()
	}
	return out
}

func standardContainer(t *testing.T) []byte {
	return createTestContainer(t,
		testPart{name: "[Content_Types].xml", content: `<Types/>`, method: zip.Deflate},
		testPart{name: documentPart, content: `<w:document><w:body><w:p><w:r><w:t>一</w:t></w:r></w:p></w:body></w:document>`, method: zip.Deflate},
		testPart{name: "word/media/image1.png", content: "\x89PNG\r\n\x1a\nbinary", method: zip.Store},
		testPart{name: "word/styles.xml", content: `<w:styles/>`, method: zip.Deflate},
	)
}

func TestPatch_RewritesOnlyTargetPart(t *testing.T) {
	container := standardContainer(t)

	out, err := New().Patch(container, documentPart, func(markup []byte) ([]byte, error) {
		return bytes.ReplaceAll(markup, []byte("一"), []byte("Jane Doe")), nil
	})
	require.NoError(t, err)

	markup, err := ReadPart(out, documentPart)
	require.NoError(t, err)
	assert.Contains(t, string(markup), "<w:t>Jane Doe</w:t>")

	before := rawEntries(t, container)
	after := rawEntries(t, out)
	require.Len(t, after, len(before))
	for name, raw := range before {
		if name == documentPart {
			continue
		}
		assert.Equal(t, raw, after[name], "part %s must be copied byte-for-byte", name)
	}
}

func TestPatch_PreservesOrderAndHeaders(t *testing.T) {
	container := standardContainer(t)

	out, err := New().Patch(container, documentPart, func(markup []byte) ([]byte, error) {
		return markup, nil
	})
	require.NoError(t, err)

	in, err := zip.NewReader(bytes.NewReader(container), int64(len(container)))
	require.NoError(t, err)
	got, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	require.Len(t, got.File, len(in.File))
	for i := range in.File {
		assert.Equal(t, in.File[i].Name, got.File[i].Name)
		assert.Equal(t, in.File[i].Method, got.File[i].Method)
		assert.True(t, in.File[i].Modified.Equal(got.File[i].Modified), "modified time of %s", in.File[i].Name)
	}
}

func TestPatch_Errors(t *testing.T) {
	identity := driven.MarkupTransform(func(m []byte) ([]byte, error) { return m, nil })
	transformErr := errors.New("transform failed")

	tests := []struct {
		name      string
		container []byte
		part      string
		transform driven.MarkupTransform
		wantErr   error
	}{
		{
			name:      "not a zip",
			container: []byte("definitely not a zip"),
			part:      documentPart,
			transform: identity,
			wantErr:   domain.ErrArchiveCorrupt,
		},
		{
			name:      "missing part",
			container: createTestContainer(t, testPart{name: "word/styles.xml", content: "<w:styles/>"}),
			part:      documentPart,
			transform: identity,
			wantErr:   domain.ErrArchivePartMissing,
		},
		{
			name:      "transform error",
			container: standardContainer(t),
			part:      documentPart,
			transform: func([]byte) ([]byte, error) { return nil, transformErr },
			wantErr:   transformErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New().Patch(tt.container, tt.part, tt.transform)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestReadPart_Missing(t *testing.T) {
	_, err := ReadPart(standardContainer(t), "word/footer1.xml")
	assert.ErrorIs(t, err, domain.ErrArchivePartMissing)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.ArchivePatcher = New()
}
