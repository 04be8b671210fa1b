package handlers

import (
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/sirupsen/logrus"

	"lyrics-server/web"
)

// StyleHandler serves the inline stylesheet
func StyleHandler(w http.ResponseWriter, r *http.Request) {
	writeInline(w, "text/css; charset=utf-8", web.StyleCSS)
}

// ScriptHandler serves the inline page script
func ScriptHandler(w http.ResponseWriter, r *http.Request) {
	writeInline(w, "application/javascript; charset=utf-8", web.ScriptJS)
}

func writeInline(w http.ResponseWriter, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		logrus.WithError(err).Debug("Client went away while writing inline resource")
	}
}

// StaticHandler serves files from root, inferring content type from the
// extension. Missing files and directories without an index.html are
// answered with 404; directory contents are never listed.
func StaticHandler(root fs.FS) http.Handler {
	return http.FileServerFS(noListingFS{root})
}

// noListingFS hides directories that have no index.html
type noListingFS struct {
	fs.FS
}

func (n noListingFS) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}

	if _, err := fs.Stat(n.FS, path.Join(name, "index.html")); err != nil {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f, nil
}
