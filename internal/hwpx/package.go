// Package hwpx assembles OWPML documents into the zip container Korean
// office suites accept. Member order is fixed and the mimetype entry is
// stored uncompressed first, as the container format requires; entries
// carry zero timestamps so identical input produces identical archives.
package hwpx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/alnah/go-md2hwpx/internal/owpml"
)

// MimeType is the literal content of the mimetype member.
const MimeType = "application/hwp+zip"

// Document collects everything one archive is built from.
type Document struct {
	Header  *owpml.Element
	Section *owpml.Element

	Title   string
	Author  string
	Subject string

	BinData []owpml.BinItem
	Preview string
}

type member struct {
	name      string
	mediaType string
	data      []byte
}

// Package serializes the XML parts and writes the archive.
func Package(doc Document) ([]byte, error) {
	members := []member{
		{"Contents/content.hpf", "application/hwpml-package+xml", owpml.Marshal(buildContentHPF(doc))},
		{"Contents/header.xml", "application/xml", owpml.Marshal(doc.Header)},
		{"Contents/section0.xml", "application/xml", owpml.Marshal(doc.Section)},
	}
	for _, item := range doc.BinData {
		members = append(members, member{item.Name, mediaTypeFor(item.Name), item.Data})
	}
	if doc.Preview != "" {
		members = append(members, member{"Preview/PrvText.txt", "text/plain", []byte(doc.Preview)})
	}
	members = append(members,
		member{"settings.xml", "application/xml", settingsXML()},
		member{"scripts.xml", "application/xml", scriptsXML()},
	)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	// mimetype must be the first entry and stored without compression.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("writing mimetype: %w", err)
	}
	if _, err := mt.Write([]byte(MimeType)); err != nil {
		return nil, fmt.Errorf("writing mimetype: %w", err)
	}

	meta := []member{
		{"META-INF/container.xml", "application/xml", containerXML()},
		{"META-INF/manifest.xml", "application/xml", manifestXML(members)},
	}
	for _, m := range append(meta, members...) {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: m.name, Method: zip.Deflate})
		if err != nil {
			return nil, fmt.Errorf("writing %s: %w", m.name, err)
		}
		if _, err := w.Write(m.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", m.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

func containerXML() []byte {
	root := owpml.New("ocf:container")
	root.Set("xmlns:ocf", "urn:oasis:names:tc:opendocument:xmlns:container")
	root.Set("xmlns:hpf", "http://www.hancom.co.kr/schema/2011/hpf")
	files := root.AddNew("ocf:rootfiles")
	rf := files.AddNew("ocf:rootfile")
	rf.Set("full-path", "Contents/content.hpf")
	rf.Set("media-type", "application/hwpml-package+xml")
	return owpml.Marshal(root)
}

// manifestXML enumerates every other archive member with its media type.
func manifestXML(members []member) []byte {
	root := owpml.New("odf:manifest")
	root.Set("xmlns:odf", "urn:oasis:names:tc:opendocument:xmlns:manifest:1.0")
	add := func(name, mediaType string) {
		e := root.AddNew("odf:file-entry")
		e.Set("odf:full-path", name)
		e.Set("odf:media-type", mediaType)
	}
	add("mimetype", MimeType)
	add("META-INF/container.xml", "application/xml")
	for _, m := range members {
		add(m.name, m.mediaType)
	}
	return owpml.Marshal(root)
}

func buildContentHPF(doc Document) *owpml.Element {
	pkg := owpml.DocumentRoot("op:package")
	pkg.Set("version", "")
	pkg.Set("unique-identifier", "")
	pkg.Set("id", "")

	meta := pkg.AddNew("op:metadata")
	meta.AddNew("op:Title").Text = doc.Title
	meta.AddNew("op:Creator").Text = doc.Author
	meta.AddNew("op:Subject").Text = doc.Subject
	meta.AddNew("op:language").Text = "ko"

	manifest := pkg.AddNew("op:manifest")
	addItem := func(id, href, mediaType string) {
		item := manifest.AddNew("op:item")
		item.Set("id", id)
		item.Set("href", href)
		item.Set("media-type", mediaType)
	}
	addItem("header", "Contents/header.xml", "application/xml")
	addItem("section0", "Contents/section0.xml", "application/xml")
	addItem("settings", "settings.xml", "application/xml")
	addItem("scripts", "scripts.xml", "application/xml")
	for _, b := range doc.BinData {
		addItem(fmt.Sprintf("image%d", b.ID), b.Name, mediaTypeFor(b.Name))
	}

	spine := pkg.AddNew("op:spine")
	spine.AddNew("op:itemref").Set("idref", "header").Set("linear", "yes")
	spine.AddNew("op:itemref").Set("idref", "section0").Set("linear", "yes")

	return pkg
}

func settingsXML() []byte {
	root := owpml.New("ha:HWPApplicationSetting")
	root.Set("xmlns:ha", "http://www.hancom.co.kr/hwpml/2011/app")
	root.Set("xmlns:config", "urn:oasis:names:tc:opendocument:xmlns:config:1.0")
	caret := root.AddNew("ha:CaretPosition")
	caret.Set("listIDRef", "0")
	caret.Set("paraIDRef", "0")
	caret.Set("pos", "0")
	return owpml.Marshal(root)
}

func scriptsXML() []byte {
	root := owpml.New("ha:scripts")
	root.Set("xmlns:ha", "http://www.hancom.co.kr/hwpml/2011/app")
	root.Set("version", "1.0")
	return owpml.Marshal(root)
}

func mediaTypeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
