package publish

import (
	"io/fs"
	"mime"
	"path"
	"sort"

	"github.com/atrium-ui/atrium/internal/errors"
	"github.com/atrium-ui/atrium/pkg/ui"
)

// File is a single publishable artifact.
type File struct {
	// Key is the destination path, slash-separated, no leading slash.
	Key string

	// Body is the file content.
	Body []byte

	// ContentType is the MIME type. Derived from the key's extension
	// when empty.
	ContentType string
}

// Site accumulates the files that make up an exported site.
type Site struct {
	renderer *ui.Renderer
	files    map[string]File
}

// NewSite creates an empty site. Pages render as full documents with
// a doctype.
func NewSite() *Site {
	return &Site{
		renderer: ui.NewRenderer(ui.RendererConfig{}),
		files:    make(map[string]File),
	}
}

// AddPage renders the node as an HTML document at the given key.
func (s *Site) AddPage(key string, node *ui.Node) error {
	html, err := s.renderer.RenderDocument(node)
	if err != nil {
		return errors.Newf(errors.CategoryPublish, "render page %q: %v", key, err)
	}
	s.files[key] = File{Key: key, Body: []byte(html), ContentType: "text/html; charset=utf-8"}
	return nil
}

// AddFile adds raw content at the given key, replacing any previous
// file there.
func (s *Site) AddFile(key string, body []byte) {
	s.files[key] = File{Key: key, Body: body, ContentType: typeFor(key)}
}

// AddDir walks fsys and adds every regular file under the given key
// prefix.
func (s *Site) AddDir(fsys fs.FS, prefix string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Newf(errors.CategoryPublish, "read asset %q: %v", p, err)
		}
		s.AddFile(path.Join(prefix, p), body)
		return nil
	})
}

// Files returns the collected files sorted by key.
func (s *Site) Files() []File {
	out := make([]File, 0, len(s.files))
	for _, f := range s.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// typeFor derives a content type from the key's extension.
func typeFor(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
