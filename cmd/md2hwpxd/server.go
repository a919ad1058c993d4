package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	md2hwpx "github.com/alnah/go-md2hwpx"
)

//go:embed static
var staticFS embed.FS

const hwpxMediaType = "application/hwpx+zip"

// server handles the upload UI and conversion endpoints. The index page is
// read from the embedded filesystem once at startup and served from memory.
type server struct {
	pool    *md2hwpx.ConverterPool
	mux     *http.ServeMux
	index   []byte
	maxSize int64
}

func newServer(pool *md2hwpx.ConverterPool) *server {
	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		index = []byte("<html><body><h1>md2hwpx</h1><p>Web UI not found.</p></body></html>")
	}

	s := &server{
		pool:    pool,
		mux:     http.NewServeMux(),
		index:   index,
		maxSize: defaultMaxUpload,
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /styles", s.handleStyles)
	s.mux.HandleFunc("POST /convert", s.handleConvertFile)
	s.mux.HandleFunc("POST /convert/text", s.handleConvertText)
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.index)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": Version})
}

func (s *server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string][]string{"presets": md2hwpx.Presets()})
}

// handleConvertFile accepts a multipart upload (file, style) and responds
// with the converted archive.
func (s *server) handleConvertFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxSize)
	if err := r.ParseMultipartForm(s.maxSize); err != nil {
		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	source, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "reading upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	name := header.Filename
	if name == "" {
		name = "document.md"
	}
	filename := strings.TrimSuffix(path.Base(name), path.Ext(name)) + ".hwpx"

	s.convert(w, source, r.FormValue("style"), filename)
}

// handleConvertText accepts raw Markdown in a form field.
func (s *server) handleConvertText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxSize)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}
	markdown := r.FormValue("markdown")
	if markdown == "" {
		http.Error(w, "missing markdown field", http.StatusBadRequest)
		return
	}
	s.convert(w, []byte(markdown), r.FormValue("style"), "document.hwpx")
}

func (s *server) convert(w http.ResponseWriter, source []byte, style, filename string) {
	res, err := s.pool.Convert(style, md2hwpx.Input{Source: source})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", hwpxMediaType)
	w.Header().Set("Content-Disposition", contentDisposition(filename))
	if n := len(res.Warnings); n > 0 {
		w.Header().Set("X-Conversion-Warnings", fmt.Sprintf("%d", n))
	}
	_, _ = w.Write(res.HWPX)
}

// contentDisposition builds the attachment header, using RFC 5987 encoding
// for non-ASCII filenames.
func contentDisposition(filename string) string {
	ascii := true
	for _, r := range filename {
		if r > 0x7e || r < 0x20 || r == '"' {
			ascii = false
			break
		}
	}
	if ascii {
		return fmt.Sprintf("attachment; filename=%q", filename)
	}
	return "attachment; filename*=UTF-8''" + url.PathEscape(filename)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
