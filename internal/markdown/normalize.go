package markdown

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize prepares raw Markdown bytes for parsing: the UTF-8 BOM is
// stripped, CRLF and bare CR line endings become LF, and tabs expand to
// four spaces so indent analysis sees a single unit.
func Normalize(source []byte) []byte {
	source = bytes.TrimPrefix(source, utf8BOM)
	s := string(source)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", "    ")
	return []byte(s)
}
