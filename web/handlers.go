// Package web serves generated spritesheets over HTTP for quick inspection
// in a browser: the raw sheet PNGs, the animated GIF previews, and an index
// page with inline thumbnails.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-spritesheet/manifest"
)

type Handler struct {
	sheetsDir string
	m         *manifest.Manifest
}

// NewHandler constructs a web handler serving the sheets in sheetsDir for the
// animations named by m.
func NewHandler(m *manifest.Manifest, sheetsDir string) *Handler {
	return &Handler{
		sheetsDir: sheetsDir,
		m:         m,
	}
}

// RegisterRoutes attaches the handler's routes to the passed router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/sheet/{name:[a-z0-9_-]+}.png", h.sheetHandler)
	r.HandleFunc("/preview/{name:[a-z0-9_-]+}.gif", h.previewHandler)
}

// known reports whether name is one of the manifest's animations. Everything
// else 404s rather than turning the handler into a generic file server.
func (h *Handler) known(name string) bool {
	for _, a := range h.m.Animations {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request, path, mime string) {
	s, err := os.Stat(path)
	if err != nil {
		http.Error(w, "sheet not generated", http.StatusNotFound)
		return
	}

	generation := 1 // bump if the way we generate sheets changes
	etag := fmt.Sprintf(`W/"sheet:%d:%d:%d:%s"`, generation, s.ModTime().Unix(), s.Size(), mime)

	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("Cache-Control", "public; max-age=3600")
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	b, err := os.ReadFile(path)
	if err != nil {
		http.Error(w, "failed to read sheet", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", s.ModTime().Format(http.TimeFormat))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (h *Handler) sheetHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !h.known(name) {
		http.Error(w, "unknown animation", http.StatusNotFound)
		return
	}
	h.serveImage(w, r, filepath.Join(h.sheetsDir, name+".png"), "image/png")
}

func (h *Handler) previewHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !h.known(name) {
		http.Error(w, "unknown animation", http.StatusNotFound)
		return
	}
	h.serveImage(w, r, filepath.Join(h.sheetsDir, name+"_preview.gif"), "image/gif")
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>spritesheets</title></head>
<body>
<h1>spritesheets</h1>
<ul>
{{range .}}
<li>
<a href="/sheet/{{.Name}}.png">{{.Name}}</a>
{{if .Thumb}}<br><img src="{{.Thumb}}" alt="{{.Name}}">{{end}}
</li>
{{end}}
</ul>
</body></html>
`))

type indexEntry struct {
	Name  string
	Thumb template.URL
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	var entries []indexEntry
	for _, a := range h.m.Animations {
		e := indexEntry{Name: a.Name}
		if t, err := h.thumbnail(a.Name); err != nil {
			glog.Warningf("no thumbnail for %s: %v", a.Name, err)
		} else {
			e.Thumb = template.URL(t)
		}
		entries = append(entries, e)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, entries); err != nil {
		glog.Errorf("rendering index: %v", err)
	}
}

// thumbnail returns a data: URL with a downsized copy of the named sheet,
// suitable for inlining in the index page.
func (h *Handler) thumbnail(name string) (string, error) {
	f, err := os.Open(filepath.Join(h.sheetsDir, name+".png"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return "", err
	}
	img = resize.Thumbnail(512, 512, img, resize.Lanczos3)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return "", err
	}
	return dataurl.New(buf.Bytes(), "image/png").String(), nil
}
