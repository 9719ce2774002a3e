package present

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/circuittrace/trace"
	"github.com/katalvlaran/circuittrace/tracer"
)

// ErrUnknownFormat is returned by New for an unrecognized format name.
var ErrUnknownFormat = errors.New("present: unknown output format")

// Presenter writes a search result to w.
type Presenter interface {
	Present(w io.Writer, res *tracer.Result) error
}

// New maps "text" (also "console", "c"), "json" or "yaml" to a Presenter.
func New(format string) (Presenter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "console", "c", "":
		return Text{}, nil
	case "json":
		return JSON{Indent: "  "}, nil
	case "yaml", "yml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Text prints each trace's grid followed by an empty line.
type Text struct{}

// Present implements Presenter.
func (Text) Present(w io.Writer, res *tracer.Result) error {
	for _, s := range res.Paths {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

// Point is a serialized coordinate.
type Point struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Path is one serialized trace.
type Path struct {
	Length int      `json:"length" yaml:"length"`
	Head   Point    `json:"head" yaml:"head"`
	Grid   []string `json:"grid" yaml:"grid"`
}

// Document is the machine-readable form of a result.
type Document struct {
	Discipline string `json:"discipline" yaml:"discipline"`
	Best       int    `json:"best" yaml:"best"`
	Count      int    `json:"count" yaml:"count"`
	Explored   int    `json:"explored" yaml:"explored"`
	Paths      []Path `json:"paths" yaml:"paths"`
}

// NewDocument converts res into a Document. Paths is never nil.
func NewDocument(res *tracer.Result) Document {
	doc := Document{
		Discipline: res.Discipline.String(),
		Best:       res.Best,
		Count:      len(res.Paths),
		Explored:   res.Stats.Explored,
		Paths:      make([]Path, 0, len(res.Paths)),
	}
	for _, s := range res.Paths {
		doc.Paths = append(doc.Paths, newPath(s))
	}
	return doc
}

func newPath(s *trace.State) Path {
	p := Path{
		Length: s.Len(),
		Head:   Point{Row: s.Row(), Col: s.Col()},
		Grid:   make([]string, s.Rows()),
	}
	for r := range p.Grid {
		p.Grid[r] = s.RowString(r)
	}
	return p
}

// JSON writes a Document as JSON, indented by Indent when non-empty.
type JSON struct {
	Indent string
}

// Present implements Presenter.
func (j JSON) Present(w io.Writer, res *tracer.Result) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("present: encode json: %w", err)
	}
	return nil
}

// YAML writes a Document as YAML.
type YAML struct{}

// Present implements Presenter.
func (YAML) Present(w io.Writer, res *tracer.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("present: encode yaml: %w", err)
	}
	return enc.Close()
}
