package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/opponentgen/internal/errors"
	"github.com/opmodel/opponentgen/internal/output"
)

// Generator clones the template pair into numbered pairs.
type Generator struct {
	fs   afero.Fs
	opts Options
}

// NewGenerator creates a generator writing through fsys.
func NewGenerator(fsys afero.Fs, opts Options) *Generator {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Generator{fs: fsys, opts: opts}
}

// Generate writes count pairs. Pairs written before a failing index are left
// in place.
func (g *Generator) Generate(count int) (*Result, error) {
	if count < 0 {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("count must be a non-negative integer, got %d", count),
			"", "count", "")
	}
	if err := g.opts.Template.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Dir:      g.opts.Dir,
		Count:    count,
		Template: g.opts.Template,
		Pairs:    make([]Pair, 0, min(count, DefaultCount)),
	}

	output.Debug("generating pairs",
		"dir", g.opts.Dir,
		"template", g.opts.Template.BaseName,
		"placeholder", g.opts.Template.Placeholder,
		"count", count)

	for i := range count {
		pair, err := g.generatePair(i)
		if err != nil {
			return result, err
		}
		result.Pairs = append(result.Pairs, pair)
	}

	return result, nil
}

// generatePair writes the pair for index i.
func (g *Generator) generatePair(i int) (Pair, error) {
	id := Identifier(i)
	t := g.opts.Template
	pair := Pair{
		Index:  i,
		ID:     id,
		Header: t.TargetName(id, HeaderExt),
		Impl:   t.TargetName(id, ImplExt),
	}

	for _, ext := range Extensions() {
		name := t.TargetName(id, ext)
		src := g.path(t.SourceName(ext))
		dst := g.path(name)

		exists, err := afero.Exists(g.fs, dst)
		if err != nil {
			return pair, fileError("checking", dst, err)
		}

		if err := g.copyFile(src, dst); err != nil {
			return pair, err
		}
		if exists {
			pair.Overwritten = append(pair.Overwritten, name)
		}
		if err := g.rewriteFile(dst, id); err != nil {
			return pair, err
		}
		output.Debug("wrote file", "path", dst, "index", i, "overwritten", exists)
	}

	return pair, nil
}

func (g *Generator) path(name string) string {
	return filepath.Join(g.opts.Dir, name)
}

// copyFile duplicates src into dst byte for byte, truncating dst if it exists.
func (g *Generator) copyFile(src, dst string) error {
	in, err := g.fs.Open(src)
	if err != nil {
		return fileError("opening template", src, err)
	}
	defer in.Close()

	perm := os.FileMode(0o644)
	if info, err := in.Stat(); err == nil {
		perm = info.Mode().Perm()
	}

	out, err := g.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fileError("creating", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fileError("copying template to", dst, err)
	}
	if err := out.Close(); err != nil {
		return fileError("closing", dst, err)
	}
	return nil
}

// rewriteFile substitutes id into path's content in place.
func (g *Generator) rewriteFile(path, id string) (err error) {
	f, err := g.fs.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fileError("opening", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError("closing", path, cerr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return fileError("reading", path, err)
	}

	data = g.opts.Template.Rewrite(data, id)

	if err := f.Truncate(0); err != nil {
		return fileError("truncating", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fileError("seeking", path, err)
	}
	if _, err := f.Write(data); err != nil {
		return fileError("writing", path, err)
	}
	return nil
}

// fileError classifies an I/O failure on path.
func fileError(action, path string, err error) error {
	msg := fmt.Sprintf("%s %s: %v", action, path, err)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  msg,
			Location: path,
			Hint:     "The template pair must exist in the working directory (see --dir and --base).",
			Cause:    errors.Join(oerrors.ErrNotFound, err),
		}
	case errors.Is(err, fs.ErrPermission):
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  msg,
			Location: path,
			Cause:    errors.Join(oerrors.ErrPermission, err),
		}
	default:
		return fmt.Errorf("%s %s: %w", action, path, err)
	}
}
