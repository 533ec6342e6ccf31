package rendering

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilenamePart_ReplacesEachDisallowedCharacter(t *testing.T) {
	assert.Equal(t, "Jane_O_Doe", SanitizeFilenamePart("Jane O'Doe"))
	assert.Equal(t, "Acme__Inc_", SanitizeFilenamePart("Acme, Inc."))
	assert.Equal(t, "plain-name_1", SanitizeFilenamePart("plain-name_1"))
	assert.Equal(t, "", SanitizeFilenamePart(""))
}

func TestDocumentFilename_AllComponents(t *testing.T) {
	got := DocumentFilename("Jane O'Doe", "Acme, Inc.", "", "docx")

	assert.Equal(t, "Jane_O_Doe_Acme__Inc__Resume.docx", got)
}

func TestDocumentFilename_DropsEmptyComponents(t *testing.T) {
	assert.Equal(t, "Jane_Resume.pdf", DocumentFilename("Jane", "", "", "pdf"))
	assert.Equal(t, "Jane_Engineer_Resume.pdf", DocumentFilename("Jane", "", "Engineer", "pdf"))
	assert.Equal(t, "_Resume.pdf", DocumentFilename("", "", "", "pdf"))
}

func TestPublicPath(t *testing.T) {
	assert.Equal(t, "resources/Jane_Resume.pdf", PublicPath("Jane_Resume.pdf"))
}

func TestWriteDocument_WritesAndReturnsPublicPath(t *testing.T) {
	dir := t.TempDir()

	relPath, err := WriteDocument(dir, "Jane_Resume.pdf", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "resources/Jane_Resume.pdf", relPath)

	data, err := os.ReadFile(filepath.Join(dir, "Jane_Resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteDocument_CreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, err := WriteDocument(dir, "Jane_Resume.pdf", []byte("x"))

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Jane_Resume.pdf"))
	assert.NoError(t, err)
}

func TestWriteDocument_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteDocument(dir, "Jane_Resume.pdf", []byte("first"))
	require.NoError(t, err)
	_, err = WriteDocument(dir, "Jane_Resume.pdf", []byte("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "Jane_Resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}
