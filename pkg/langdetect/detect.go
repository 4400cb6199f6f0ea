// Package langdetect identifies XML documents among files that have no
// configured extension. It uses go-enry for filename, extension and content
// heuristics and falls back to looking for an XML declaration.
package langdetect

import (
	"bytes"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// LangXML is the linguist name of plain XML.
const LangXML = "XML"

// sniffLen bounds how much content is inspected.
const sniffLen = 8 << 10

// xmlLanguages are linguist languages whose files are XML documents.
//
//nolint:gochecknoglobals // Read-only lookup table.
var xmlLanguages = []string{
	"Ant Build System",
	"Maven POM",
	"SVG",
	LangXML,
	"XML Property List",
	"XPages",
	"XProc",
	"XSLT",
}

//nolint:gochecknoglobals // Byte order marks.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Detect returns the linguist language of a file, or "" when unknown.
// Only unambiguous filename and extension matches are trusted before the
// content is looked at.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}

	head := content[:min(len(content), sniffLen)]
	if HasXMLDeclaration(head) {
		return LangXML
	}
	if enry.IsBinary(head) {
		return ""
	}
	if lang, safe := enry.GetLanguageByContent(path, head); safe {
		return lang
	}
	return ""
}

// IsXMLLanguage reports whether files of a linguist language are XML.
func IsXMLLanguage(lang string) bool {
	return slices.Contains(xmlLanguages, lang)
}

// IsXML reports whether the file looks like an XML document.
func IsXML(path string, content []byte) bool {
	return IsXMLLanguage(Detect(path, content))
}

// HasXMLDeclaration reports whether content starts with an XML declaration,
// after an optional byte order mark and whitespace. UTF-16 content is
// recognized by its byte order mark.
func HasXMLDeclaration(content []byte) bool {
	switch {
	case bytes.HasPrefix(content, bomUTF16BE):
		return bytes.HasPrefix(content[2:], []byte{0, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l'})
	case bytes.HasPrefix(content, bomUTF16LE):
		return bytes.HasPrefix(content[2:], []byte{'<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0})
	}

	content = bytes.TrimPrefix(content, bomUTF8)
	content = bytes.TrimLeft(content, " \t\r\n")
	return bytes.HasPrefix(content, []byte("<?xml")) && len(content) > len("<?xml") &&
		bytes.IndexByte([]byte(" \t\r\n?"), content[len("<?xml")]) >= 0
}
