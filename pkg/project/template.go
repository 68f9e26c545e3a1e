package project

import (
	"embed"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

//go:embed all:template
var embedded embed.FS

// DefaultTemplate returns the template tree compiled into the binary.
func DefaultTemplate() fs.FS {
	sub, err := fs.Sub(embedded, "template")
	if err != nil {
		panic(err) // the embed directive guarantees the directory exists
	}

	return sub
}

// LoadTemplate returns the template at dir, or the default template when dir
// is empty.
func LoadTemplate(dir string) (fs.FS, error) {
	if dir == "" {
		return DefaultTemplate(), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat template: %s", dir)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("template %s is not a directory", dir)
	}

	return os.DirFS(dir), nil
}
