package server

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// newStaticHandler serves files from dir under the /static/ prefix. Excluded
// paths and directories answer 404; no listings are produced.
func newStaticHandler(dir string, exclude []string) http.Handler {
	return http.StripPrefix("/static/", http.FileServer(staticFS{root: http.Dir(dir), exclude: exclude}))
}

// staticFS hides excluded entries and directories from http.FileServer.
type staticFS struct {
	root    http.FileSystem
	exclude []string
}

func (s staticFS) Open(name string) (http.File, error) {
	rel := strings.TrimPrefix(path.Clean("/"+name), "/")
	if isExcluded(rel, s.exclude) {
		return nil, os.ErrNotExist
	}

	f, err := s.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// isExcluded reports whether rel (slash-separated, relative to the static
// root) or any of its parent directories matches a pattern, either as a
// path or by its name alone.
func isExcluded(rel string, patterns []string) bool {
	if rel == "" {
		return false
	}
	segments := strings.Split(rel, "/")
	for i := range segments {
		prefix := strings.Join(segments[:i+1], "/")
		for _, pattern := range patterns {
			if matched, err := doublestar.Match(pattern, prefix); err == nil && matched {
				return true
			}
			if matched, err := doublestar.Match(pattern, segments[i]); err == nil && matched {
				return true
			}
		}
	}
	return false
}
