package project

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/pseudomuto/nodeseed/pkg/consts"
	"github.com/pseudomuto/nodeseed/pkg/scaffold"
)

// Project writes new projects from a template tree.
type Project struct {
	template fs.FS
}

// New creates a Project that copies from template. Use DefaultTemplate for
// the embedded template.
//
// Example:
//
//	answers, _ := scaffold.NewAnswers(scaffold.ProjectAnswers{ProjectName: "my-shop", ...})
//
//	p := project.New(project.DefaultTemplate())
//	if err := p.Materialize("my-shop", scaffold.Plan(answers)); err != nil {
//		log.Fatal(err)
//	}
func New(template fs.FS) *Project {
	return &Project{template: template}
}

// Materialize copies the template into dest and writes docs over the copies.
//
// Nothing is written unless the preflight check passes: dest must be absent or
// a directory, and none of the files the template or docs would create may
// already exist. The first failure after preflight aborts the run without
// cleanup and is returned as a *MaterializeError.
func (p *Project) Materialize(dest string, docs scaffold.Documents) error {
	files, err := p.plannedFiles(docs)
	if err != nil {
		return &MaterializeError{Op: "preflight", Path: dest, Err: err}
	}

	if err := preflight(dest, files); err != nil {
		return err
	}

	if err := p.copyTemplate(dest); err != nil {
		return err
	}

	return overlay(dest, docs)
}

// Files returns the slash-separated paths Materialize would write, sorted.
func (p *Project) Files(docs scaffold.Documents) ([]string, error) {
	return p.plannedFiles(docs)
}

func (p *Project) plannedFiles(docs scaffold.Documents) ([]string, error) {
	seen := make(map[string]bool)

	err := fs.WalkDir(p.template, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			seen[name] = true
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read template")
	}

	for _, doc := range docs {
		if !fs.ValidPath(doc.Path) || doc.Path == "." {
			return nil, errors.Errorf("invalid document path: %q", doc.Path)
		}

		seen[doc.Path] = true
	}

	files := make([]string, 0, len(seen))
	for name := range seen {
		files = append(files, name)
	}
	sort.Strings(files)

	return files, nil
}

func preflight(dest string, files []string) error {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return nil
	}

	if err != nil {
		return &MaterializeError{Op: "preflight", Path: dest, Err: err}
	}

	if !info.IsDir() {
		return &MaterializeError{Op: "preflight", Path: dest, Err: errors.New("destination exists and is not a directory")}
	}

	var conflicts []string
	for _, name := range files {
		// Anything other than a missing path blocks the write, e.g. a file
		// where the template needs a directory.
		if _, err := os.Lstat(filepath.Join(dest, filepath.FromSlash(name))); !os.IsNotExist(err) {
			conflicts = append(conflicts, name)
		}
	}

	if len(conflicts) > 0 {
		return &MaterializeError{
			Op:        "preflight",
			Path:      dest,
			Conflicts: conflicts,
			Err:       errors.Errorf("%d file(s) would be overwritten: %v", len(conflicts), conflicts),
		}
	}

	return nil
}

func (p *Project) copyTemplate(dest string) error {
	return fs.WalkDir(p.template, ".", func(name string, d fs.DirEntry, err error) error {
		target := filepath.Join(dest, filepath.FromSlash(name))
		if err != nil {
			return &MaterializeError{Op: "copy", Path: target, Err: err}
		}

		if d.IsDir() {
			if err := os.MkdirAll(target, consts.ModeDir); err != nil {
				return &MaterializeError{Op: "copy", Path: target, Err: err}
			}
			return nil
		}

		data, err := fs.ReadFile(p.template, name)
		if err != nil {
			return &MaterializeError{Op: "copy", Path: target, Err: err}
		}

		if err := os.WriteFile(target, data, consts.ModeFile); err != nil {
			return &MaterializeError{Op: "copy", Path: target, Err: err}
		}

		return nil
	})
}

func overlay(dest string, docs scaffold.Documents) error {
	for _, doc := range docs {
		target := filepath.Join(dest, filepath.FromSlash(doc.Path))

		if dir := path.Dir(doc.Path); dir != "." {
			if err := os.MkdirAll(filepath.Dir(target), consts.ModeDir); err != nil {
				return &MaterializeError{Op: "overlay", Path: target, Err: err}
			}
		}

		if err := os.WriteFile(target, doc.Content, consts.ModeFile); err != nil {
			return &MaterializeError{Op: "overlay", Path: target, Err: err}
		}
	}

	return nil
}
