package rendering

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// publicRoot is the fixed public resources root that rendered documents are
// exposed under.
const publicRoot = "resources"

// SanitizeFilenamePart replaces every character outside [A-Za-z0-9_-] with
// an underscore.
func SanitizeFilenamePart(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// DocumentFilename derives the deterministic output filename from the
// candidate name and the target company and role. Empty components are
// dropped before joining.
func DocumentFilename(name, targetCompany, targetRole, ext string) string {
	var parts []string
	for _, raw := range []string{name, targetCompany, targetRole} {
		if raw == "" {
			continue
		}
		parts = append(parts, SanitizeFilenamePart(raw))
	}
	return strings.Join(parts, "_") + "_Resume." + ext
}

// PublicPath returns the relative download path for a rendered document.
func PublicPath(filename string) string {
	return path.Join(publicRoot, filename)
}

// WriteDocument writes the rendered bytes under outputDir, creating the
// directory if absent. The write goes through a temp file and a rename so a
// failed write never leaves a partial document behind. Returns the public
// relative path of the written file.
func WriteDocument(outputDir, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", &RenderError{Message: "failed to create output directory", Cause: err}
	}

	target := filepath.Join(outputDir, filename)
	tmp, err := os.CreateTemp(outputDir, filename+".tmp-*")
	if err != nil {
		return "", &RenderError{Message: "failed to create output file", Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", &RenderError{Message: "failed to write document", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", &RenderError{Message: "failed to finalize document", Cause: err}
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", &RenderError{Message: "failed to move document into place", Cause: err}
	}

	return PublicPath(filename), nil
}
