// Package mimetype detects canonical MIME types from content and paths,
// and maps MIME types to their file extensions. Detection inspects a
// bounded prefix only, so arbitrarily large inputs stay cheap.
package mimetype

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// sniffLen is the number of leading bytes detection looks at.
const sniffLen = 512

// DetectMIMEType returns the MIME type for the given content. The ordered
// magic-byte table is consulted first; content that looks like text falls
// back to text-family types and everything else to application/octet-stream.
func DetectMIMEType(data []byte) string {
	prefix := data
	if len(prefix) > sniffLen {
		prefix = prefix[:sniffLen]
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(prefix, sig.prefix) {
			return sig.mime
		}
	}

	if looksLikeHTML(prefix) {
		return "text/html"
	}
	if looksLikeText(prefix) {
		return "text/plain"
	}
	return TypeOctetStream
}

// DetectMIMETypeFromPath detects the MIME type of a file. Only a bounded
// prefix is read. When content sniffing is inconclusive (generic fallback
// or a bare container signature), the path's extension decides via the
// static mapping table. An unreadable path is an error.
func DetectMIMETypeFromPath(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	detected := DetectMIMEType(buf[:n])
	if !inconclusive(detected) {
		return detected, nil
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if mime, ok := extensionTypes[ext]; ok {
		return mime, nil
	}
	return detected, nil
}

// ExtensionsForMIME returns the file extensions associated with a
// canonical MIME type, sorted for stable output. An unrecognised type
// yields an empty set, not an error.
func ExtensionsForMIME(mime string) []string {
	exts, ok := typeExtensions[mime]
	if !ok {
		return nil
	}
	out := make([]string, len(exts))
	copy(out, exts)
	sort.Strings(out)
	return out
}

// inconclusive reports whether a sniffed type should defer to the
// extension. Zip and OLE are containers shared by many office formats;
// plain text covers every textual syntax.
func inconclusive(mime string) bool {
	switch mime {
	case TypeOctetStream, TypeZip, TypeOLEStorage, "text/plain":
		return true
	}
	return false
}

// looksLikeHTML checks for an HTML document marker near the start.
func looksLikeHTML(prefix []byte) bool {
	head := strings.ToLower(string(bytes.TrimLeft(prefix, " \t\r\n")))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// looksLikeText reports whether the prefix is plausible UTF-8 text: no
// NUL or non-whitespace control bytes, and valid encoding up to the last
// complete rune.
func looksLikeText(prefix []byte) bool {
	if len(prefix) == 0 {
		return false
	}

	for _, b := range prefix {
		if b == 0 {
			return false
		}
		if b < 0x20 && b != '\n' && b != '\r' && b != '\t' && b != '\f' {
			return false
		}
	}

	// The prefix may cut a multi-byte rune; trim back to a boundary
	// before validating.
	trimmed := prefix
	for len(trimmed) > 0 && !utf8.Valid(trimmed) {
		r, _ := utf8.DecodeLastRune(trimmed)
		if r != utf8.RuneError {
			break
		}
		trimmed = trimmed[:len(trimmed)-1]
		if len(prefix)-len(trimmed) > utf8.UTFMax {
			return false
		}
	}
	return len(trimmed) > 0 && utf8.Valid(trimmed)
}
