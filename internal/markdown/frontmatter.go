package markdown

import (
	"bytes"

	"github.com/alnah/go-md2hwpx/internal/yamlutil"
)

// Meta holds document metadata read from a leading YAML front matter block.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

var frontMatterFence = []byte("---")

// ExtractFrontMatter splits a leading `---` YAML block off the source and
// returns the remaining body plus the decoded metadata. A missing or
// malformed block leaves the source untouched with empty metadata; front
// matter is a convenience, not a failure mode.
func ExtractFrontMatter(source []byte) ([]byte, Meta) {
	var meta Meta

	rest, ok := bytes.CutPrefix(source, frontMatterFence)
	if !ok || (len(rest) > 0 && rest[0] != '\n') {
		return source, meta
	}

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return source, meta
	}
	block := rest[1 : end+1]
	body := rest[end+len("\n---"):]
	if len(body) > 0 {
		if body[0] != '\n' {
			return source, meta
		}
		body = body[1:]
	}

	if err := yamlutil.Unmarshal(block, &meta); err != nil {
		return source, Meta{}
	}
	return body, meta
}
