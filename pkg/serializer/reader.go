// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the format from a file extension
// (.json, .yaml/.yml, .table/.txt), case-insensitively. Unknown extensions
// default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "path", path)
		return FormatJSON
	}
}

// Reader decodes JSON or YAML documents. Table output is write-only.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a Reader over input. If input is an io.Closer it is
// closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}
	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closer = c
	}
	return r, nil
}

// NewFileReader opens path for decoding in format.
func NewFileReader(format Format, path string) (*Reader, error) {
	if err := readable(format); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, cberrors.WrapWithContext(cberrors.ErrCodeNotFound, "failed to open file", err,
			map[string]any{"path": path})
	}
	return &Reader{format: format, input: f, closer: f}, nil
}

// NewFileReaderAuto opens path with the format implied by its extension.
func NewFileReaderAuto(path string) (*Reader, error) {
	return NewFileReader(FormatFromPath(path), path)
}

func readable(format Format) error {
	if format.IsUnknown() {
		return cberrors.New(cberrors.ErrCodeInvalidRequest, "unknown format: "+string(format))
	}
	if format == FormatTable {
		return cberrors.New(cberrors.ErrCodeInvalidRequest, "table format does not support deserialization")
	}
	return nil
}

// Deserialize decodes the next document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil || r.input == nil {
		return cberrors.New(cberrors.ErrCodeInvalidRequest, "reader has no input")
	}

	var err error
	switch r.format {
	case FormatJSON:
		err = json.NewDecoder(r.input).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r.input).Decode(v)
	default:
		return readable(r.format)
	}
	if err != nil {
		return cberrors.Wrap(cberrors.ErrCodeInvalidRequest, "failed to decode "+string(r.format), err)
	}
	return nil
}

// Close releases the underlying input. Safe to call more than once.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile decodes the file at path into a new T, choosing the format from
// the extension.
//
//	cfg, err := serializer.FromFile[cli.Config]("cookbook.yaml")
func FromFile[T any](path string) (*T, error) {
	r, err := NewFileReaderAuto(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
