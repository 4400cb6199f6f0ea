package xmldoc

// EncodingUTF8 is the canonical name of the default document encoding.
const EncodingUTF8 = "UTF-8"

// Resource identifies a checked document. It is comparable, so two resources
// are the same when both the path and the encoding match.
type Resource struct {
	// Path is the file path as given to the linter.
	Path string

	// Encoding is the canonical name of the character encoding the file
	// was decoded from.
	Encoding string
}

func (r Resource) String() string {
	if r.Encoding == "" || r.Encoding == EncodingUTF8 {
		return r.Path
	}
	return r.Path + " (" + r.Encoding + ")"
}
