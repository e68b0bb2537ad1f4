// Package codec provides typed JSON and YAML encoding for documents.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name. The empty string is not a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// FormatOf picks the format from a file extension: .yaml and .yml are YAML,
// everything else is JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// ErrTrailingData reports content after the first encoded value.
var ErrTrailingData = errors.New("unexpected data after the first document")

// TypedCodec provides type-safe encoding/decoding.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// For returns the codec for format.
func For[T any](format Format) TypedCodec[T] {
	if format == FormatYAML {
		return NewTypedYAMLCodec[T]()
	}
	return NewTypedJSONCodec[T]()
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	Indent string
}

// NewTypedJSONCodec creates a JSON codec that indents with two spaces.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{Indent: "  "}
}

// Encode encodes value to JSON, newline terminated.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.Indent != "" {
		data, err = json.MarshalIndent(v, "", c.Indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode decodes JSON to a value. Unknown fields and anything after the
// first value are rejected.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return v, ErrTrailingData
	}
	return v, nil
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	Indent int
}

// NewTypedYAMLCodec creates a YAML codec that indents with two spaces.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{Indent: 2}
}

// Encode encodes value to YAML.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes a single YAML document to a value. Unknown fields and
// further documents are rejected.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		return v, ErrTrailingData
	}
	return v, nil
}
