// Package store encodes session documents and persists them to JSON files or
// a BoltDB database
package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ayoisaiah/tally/internal/osutil"
)

// Files stores each document as a JSON file inside Dir.
type Files struct {
	Dir string
}

// ValidName reports an error if name cannot be used as a document name.
func ValidName(name string) error {
	switch {
	case name == "":
		return ErrInvalidPath.Fmt("empty file name")
	case !utf8.ValidString(name):
		return ErrInvalidPath.Fmt("file name is not valid UTF-8")
	case strings.ContainsAny(name, `/\`+"\x00"):
		return ErrInvalidPath.Fmt("file name must not contain separators")
	case name == "." || name == "..":
		return ErrInvalidPath.Fmt("file name must not be " + name)
	}

	return nil
}

// path joins the directory and file name after validating both.
func (f Files) path(name string) (string, error) {
	if f.Dir == "" {
		return "", ErrInvalidPath.Fmt("empty directory")
	}

	if !utf8.ValidString(f.Dir) || strings.ContainsRune(f.Dir, 0) {
		return "", ErrInvalidPath.Fmt("directory cannot be represented as text")
	}

	if err := ValidName(name); err != nil {
		return "", err
	}

	return filepath.Join(f.Dir, name), nil
}

// Save writes the document to Dir/name. The directory is created if it does
// not exist and the file is replaced atomically.
func (f Files) Save(ctx context.Context, name string, doc *Document) error {
	path, err := f.path(name)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	b, err := Encode(doc)
	if err != nil {
		return ErrMalformed.Wrap(err)
	}

	err = os.MkdirAll(f.Dir, osutil.DirPermission)
	if err != nil {
		return classify(err)
	}

	tmp, err := os.CreateTemp(f.Dir, name+".*.tmp")
	if err != nil {
		return classify(err)
	}

	defer func() {
		// no-op once the rename has succeeded
		_ = os.Remove(tmp.Name())
	}()

	_, err = tmp.Write(b)
	if err != nil {
		_ = tmp.Close()
		return classify(err)
	}

	err = tmp.Chmod(osutil.FilePermission)
	if err != nil {
		_ = tmp.Close()
		return classify(err)
	}

	err = tmp.Close()
	if err != nil {
		return classify(err)
	}

	return classify(os.Rename(tmp.Name(), path))
}

// Load reads and decodes Dir/name.
func (f Files) Load(ctx context.Context, name string) (*Document, error) {
	path, err := f.path(name)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(err)
	}

	return Decode(b)
}
