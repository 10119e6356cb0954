// Package ux renders command output. Every command writes through a
// Formatter so that text, json and yaml output stay consistent, and the text
// renderers share one table style.
package ux

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Formatter writes command results to the output writer.
type Formatter interface {
	Format(data any) error
}

// FormatterOptions configures a formatter.
type FormatterOptions struct {
	// Writer is where output is written (defaults to os.Stdout)
	Writer io.Writer
	// NoColor disables styling for text output
	NoColor bool
	// Compact drops indentation for JSON/YAML
	Compact bool
}

// NewFormatter creates a formatter for the given format string.
func NewFormatter(format string, opts *FormatterOptions) (Formatter, error) {
	if opts == nil {
		opts = &FormatterOptions{}
	}
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "text", "":
		return &TextFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (supported: text, json, yaml)", format)
	}
}

// JSONFormatter writes data as JSON.
type JSONFormatter struct {
	opts *FormatterOptions
}

func (f *JSONFormatter) Format(data any) error {
	encoder := json.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}

// YAMLFormatter writes data as YAML.
type YAMLFormatter struct {
	opts *FormatterOptions
}

func (f *YAMLFormatter) Format(data any) error {
	encoder := yaml.NewEncoder(f.opts.Writer)
	if !f.opts.Compact {
		encoder.SetIndent(2)
	}
	defer encoder.Close()
	return encoder.Encode(data)
}

// TextRenderer is implemented by result types that have a human-readable
// table rendering.
type TextRenderer interface {
	RenderText(w io.Writer, noColor bool) error
}

// TextFormatter writes human-readable output. Result types implement
// TextRenderer; primitives and Stringers print directly.
type TextFormatter struct {
	opts *FormatterOptions
}

func (f *TextFormatter) Format(data any) error {
	switch v := data.(type) {
	case TextRenderer:
		return v.RenderText(f.opts.Writer, f.opts.NoColor)
	case string:
		_, err := fmt.Fprintln(f.opts.Writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.opts.Writer, v.String())
		return err
	default:
		return fmt.Errorf("no text rendering for %T; use --output json or yaml", data)
	}
}
