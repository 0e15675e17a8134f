package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CooperTran2196/scenetree/internal/scene"
	"github.com/itchyny/gojq"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the console tree (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|yaml)")
	}
}

// IsStructured reports whether the format is machine-readable.
func IsStructured(format Format) bool {
	return format == FormatJSON || format == FormatYAML
}

// Report is the structured form of a parsed scene.
type Report struct {
	Scene string        `json:"scene" yaml:"scene"`
	Stats scene.Stats   `json:"stats" yaml:"stats"`
	Roots []*scene.Node `json:"roots" yaml:"roots"`
}

// NewReport builds the report for a resolved hierarchy.
func NewReport(name string, h *scene.Hierarchy) Report {
	return Report{
		Scene: name,
		Stats: h.Stats(),
		Roots: h.Forest(),
	}
}

// Printer writes structured output, optionally filtered by a jq query.
type Printer struct {
	w      io.Writer
	format Format
	query  string
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format, query string) *Printer {
	return &Printer{
		w:      w,
		format: format,
		query:  strings.TrimSpace(query),
	}
}

// Print outputs data in the configured format.
func (p *Printer) Print(data any) error {
	if !IsStructured(p.format) {
		return fmt.Errorf("unsupported structured format: %s", p.format)
	}
	if p.query == "" {
		return p.encode(data)
	}

	code, err := compileQuery(p.query)
	if err != nil {
		return err
	}
	input, err := normalize(data)
	if err != nil {
		return err
	}

	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %w", err)
		}
		if err := p.encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encode(v any) error {
	switch p.format {
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(p.w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// ValidateQuery reports whether query is a valid jq expression.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	_, err := compileQuery(query)
	return err
}

func compileQuery(query string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	return code, nil
}

// normalize converts data into the plain maps and slices gojq operates on.
func normalize(data any) (any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding query input: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decoding query input: %w", err)
	}
	return v, nil
}
