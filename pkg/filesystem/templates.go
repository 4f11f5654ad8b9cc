package filesystem

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// TemplateDir reads templates stored as <name>.<extension> files directly
// under one root directory.
type TemplateDir struct {
	fs        afero.Fs
	root      string
	extension string
}

// NewTemplateDir creates an accessor scoped to root. The extension is given
// without the leading dot.
func NewTemplateDir(fsys afero.Fs, root, extension string) *TemplateDir {
	return &TemplateDir{
		fs:        fsys,
		root:      root,
		extension: strings.TrimPrefix(extension, "."),
	}
}

// Root returns the directory the accessor reads from
func (d *TemplateDir) Root() string {
	return d.root
}

// PathFor returns the file that holds the named template
func (d *TemplateDir) PathFor(name string) string {
	return filepath.Join(d.root, name+"."+d.extension)
}

// FetchContent returns the content of the named template. Errors are the
// underlying filesystem errors, so callers can test for fs.ErrNotExist.
func (d *TemplateDir) FetchContent(name string) (string, error) {
	path := d.PathFor(name)
	info, err := d.fs.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", &fs.PathError{Op: "read", Path: path, Err: fs.ErrInvalid}
	}
	data, err := afero.ReadFile(d.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListFiles returns the names of the templates in the root directory, with
// the extension stripped, sorted lexicographically. Directories and files
// with another extension are skipped.
func (d *TemplateDir) ListFiles() ([]string, error) {
	entries, err := afero.ReadDir(d.fs, d.root)
	if err != nil {
		return nil, err
	}

	suffix := "." + d.extension
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), suffix)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}
