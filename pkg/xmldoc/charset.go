package xmldoc

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedEncoding is returned for encodings golang.org/x/text cannot handle.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

const (
	encodingUTF16BE = "UTF-16BE"
	encodingUTF16LE = "UTF-16LE"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// declEncoding matches the encoding pseudo-attribute of an XML declaration.
var declEncoding = regexp.MustCompile(`^<\?xml[^>]*?\sencoding\s*=\s*["']([A-Za-z][A-Za-z0-9._:-]*)["']`)

// SniffEncoding guesses the encoding of raw file content from its byte order
// mark or XML declaration. It returns EncodingUTF8 when neither is present.
func SniffEncoding(content []byte) string {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8
	case bytes.HasPrefix(content, bomUTF16BE):
		return encodingUTF16BE
	case bytes.HasPrefix(content, bomUTF16LE):
		return encodingUTF16LE
	}

	if m := declEncoding.FindSubmatch(content); m != nil {
		return string(m[1])
	}

	return EncodingUTF8
}

// lookupEncoding resolves an encoding label. A nil encoding means UTF-8.
func lookupEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" || strings.EqualFold(label, "utf-8") || strings.EqualFold(label, "utf8") {
		return nil, EncodingUTF8, nil
	}

	// UTF-16 byte order marks are kept as U+FEFF in the decoded content so
	// that re-encoding restores them.
	switch strings.ToUpper(label) {
	case "UTF-16", encodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), encodingUTF16BE, nil
	case encodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), encodingUTF16LE, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
	}

	name, err := ianaindex.MIME.Name(enc)
	if err != nil || name == "" {
		name = strings.ToUpper(label)
	}
	if name == EncodingUTF8 {
		return nil, EncodingUTF8, nil
	}

	return enc, name, nil
}

// Decode converts raw file content to UTF-8. If label is empty the encoding is
// sniffed from the content. It returns the decoded content and the canonical
// encoding name to use for re-encoding.
func Decode(raw []byte, label string) ([]byte, string, error) {
	if label == "" {
		label = SniffEncoding(raw)
	}

	enc, name, err := lookupEncoding(label)
	if err != nil {
		return nil, "", err
	}
	if enc == nil {
		return raw, name, nil
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", name, err)
	}

	return decoded, name, nil
}

// Encode converts UTF-8 content back to the named encoding. It is the inverse
// of Decode for content Decode produced.
func Encode(content []byte, name string) ([]byte, error) {
	enc, canonical, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return content, nil
	}

	encoded, err := enc.NewEncoder().Bytes(content)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", canonical, err)
	}

	return encoded, nil
}

// CanonicalEncoding returns the canonical name of a supported encoding label.
func CanonicalEncoding(label string) (string, error) {
	_, name, err := lookupEncoding(label)
	return name, err
}
