package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goxmllint/pkg/langdetect"
)

func TestIsXML(t *testing.T) {
	t.Parallel()

	utf16le := []byte{0xFF, 0xFE, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0, ' ', 0}

	tests := []struct {
		name    string
		path    string
		content []byte
		want    bool
	}{
		{"xml extension", "feed.xml", nil, true},
		{"svg extension", "icons/logo.svg", []byte("<svg/>"), true},
		{"xslt extension", "to-html.xslt", nil, true},
		{"maven pom", "module/pom.xml", []byte("<project/>"), true},
		{"declaration without extension", "settings", []byte("<?xml version=\"1.0\"?>\n<config/>"), true},
		{"declaration after bom", "payload", append([]byte{0xEF, 0xBB, 0xBF}, "<?xml version=\"1.0\"?><a/>"...), true},
		{"utf-16 declaration", "payload", utf16le, true},
		{"plist with declaration", "Info.plist", []byte("<?xml version=\"1.0\"?>\n<plist/>"), true},
		{"go source", "main.go", []byte("package main\n"), false},
		{"html", "index.html", []byte("<!DOCTYPE html><html></html>"), false},
		{"plain text", "NOTES", []byte("remember the milk\n"), false},
		{"binary", "blob", []byte{0, 1, 2, 3, 0, 0xFF}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.IsXML(tt.path, tt.content))
		})
	}
}

func TestHasXMLDeclaration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		content string
		want    bool
	}{
		{`<?xml version="1.0"?>`, true},
		{"\n  <?xml version=\"1.0\"?>", true},
		{"<?xml?>", true},
		{"<?xml-stylesheet href=\"a.xsl\"?>", false},
		{"<?xml", false},
		{"<a/>", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.HasXMLDeclaration([]byte(tt.content)))
		})
	}
}

func TestIsXMLLanguage(t *testing.T) {
	t.Parallel()

	assert.True(t, langdetect.IsXMLLanguage(langdetect.LangXML))
	assert.True(t, langdetect.IsXMLLanguage("SVG"))
	assert.False(t, langdetect.IsXMLLanguage("HTML"))
	assert.False(t, langdetect.IsXMLLanguage(""))
}
