// Package generator clones a template header/implementation pair into
// numbered opponent pairs.
package generator

import (
	"bytes"
	"fmt"
	"strings"

	oerrors "github.com/opmodel/opponentgen/internal/errors"
)

const (
	// DefaultCount is the number of pairs generated when no count is given.
	DefaultCount = 10

	// DefaultBaseName is the base name shared by the template pair.
	DefaultBaseName = "DummyOpponent"

	// DefaultPlaceholder is the identifier embedded in the template content.
	DefaultPlaceholder = "123456789"

	// HeaderExt is the header file extension.
	HeaderExt = "h"

	// ImplExt is the implementation file extension.
	ImplExt = "cpp"

	// IdentifierWidth is the number of repeated digits in a generated identifier.
	IdentifierWidth = 9
)

// Template describes the template pair that generated files are cloned from.
type Template struct {
	// BaseName is the file name shared by the header and implementation,
	// without extension.
	BaseName string `json:"baseName" yaml:"baseName"`

	// Placeholder is the literal identifier replaced in generated content.
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// DefaultTemplate returns the DummyOpponent template with the default placeholder.
func DefaultTemplate() Template {
	return Template{
		BaseName:    DefaultBaseName,
		Placeholder: DefaultPlaceholder,
	}
}

// Extensions returns the extensions of a pair, header first.
func Extensions() []string {
	return []string{HeaderExt, ImplExt}
}

// Validate checks that the template can produce well-formed file names.
func (t Template) Validate() error {
	if t.BaseName == "" {
		return oerrors.NewValidationError("template base name must not be empty", "", "base", "Pass --base or set OPPONENTGEN_BASE.")
	}
	if strings.ContainsAny(t.BaseName, `/\`) {
		return oerrors.NewValidationError(
			fmt.Sprintf("template base name %q must not contain a path separator", t.BaseName),
			"", "base", "Use --dir to select the directory holding the template pair.")
	}
	if t.Placeholder == "" {
		return oerrors.NewValidationError("placeholder must not be empty", "", "placeholder", "")
	}
	return nil
}

// SourceName returns the template file name for ext.
func (t Template) SourceName(ext string) string {
	return t.BaseName + "." + ext
}

// HeaderName returns the template header file name.
func (t Template) HeaderName() string {
	return t.SourceName(HeaderExt)
}

// ImplName returns the template implementation file name.
func (t Template) ImplName() string {
	return t.SourceName(ImplExt)
}

// TargetName returns the generated file name for id and ext.
func (t Template) TargetName(id, ext string) string {
	return t.BaseName + id + "." + ext
}

// Rewrite returns data with every placeholder replaced by id and every
// reference to the template header replaced by the generated header's name.
// The header substitution applies to implementation files too.
func (t Template) Rewrite(data []byte, id string) []byte {
	data = bytes.ReplaceAll(data, []byte(t.Placeholder), []byte(id))
	return bytes.ReplaceAll(data, []byte(t.HeaderName()), []byte(t.TargetName(id, HeaderExt)))
}

// Identifier returns the digit i mod 10 repeated IdentifierWidth times.
// Indices ten apart yield the same identifier.
func Identifier(i int) string {
	d := i % 10
	if d < 0 {
		d = -d
	}
	return strings.Repeat(string(rune('0'+d)), IdentifierWidth)
}

// Pair is one generated header/implementation pair.
type Pair struct {
	// Index is the iteration index the pair was generated for.
	Index int `json:"index" yaml:"index"`

	// ID is the identifier substituted into names and content.
	ID string `json:"id" yaml:"id"`

	// Header is the generated header file name.
	Header string `json:"header" yaml:"header"`

	// Impl is the generated implementation file name.
	Impl string `json:"impl" yaml:"impl"`

	// Overwritten lists the pair's files that existed before this index
	// wrote them, including files written earlier in the same run.
	Overwritten []string `json:"overwritten,omitempty" yaml:"overwritten,omitempty"`
}

// IsOverwritten reports whether name existed before the pair wrote it.
func (p Pair) IsOverwritten(name string) bool {
	for _, o := range p.Overwritten {
		if o == name {
			return true
		}
	}
	return false
}

// Options configures a Generator.
type Options struct {
	// Dir is the working directory holding the template pair and receiving
	// generated files.
	Dir string

	// Template is the template pair to clone.
	Template Template
}

// Result contains the outcome of a generation run.
type Result struct {
	// Dir is the directory files were written to.
	Dir string `json:"dir" yaml:"dir"`

	// Count is the requested number of pairs.
	Count int `json:"count" yaml:"count"`

	// Template is the template pair that was cloned.
	Template Template `json:"template" yaml:"template"`

	// Pairs lists generated pairs in index order.
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Overwritten returns every overwritten file name, in write order.
func (r *Result) Overwritten() []string {
	var files []string
	for _, p := range r.Pairs {
		files = append(files, p.Overwritten...)
	}
	return files
}

// Files returns every file written, in write order.
func (r *Result) Files() []string {
	files := make([]string, 0, 2*len(r.Pairs))
	for _, p := range r.Pairs {
		files = append(files, p.Header, p.Impl)
	}
	return files
}
