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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every emitted document.
const APIVersion = "cookbook/v1"

// Kind identifies the type of an emitted document.
type Kind string

const (
	KindRecipe           Kind = "Recipe"
	KindIngredientList   Kind = "IngredientList"
	KindNutritionResult  Kind = "NutritionResult"
	KindValidationResult Kind = "ValidationResult"
)

// Header contains metadata and versioning information for emitted documents.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata describes how the document was produced: always a timestamp,
	// plus the tool version and the inputs that were read.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option adds metadata to a Header built by New.
type Option func(*Header)

// WithVersion records the tool version. An empty version is omitted.
func WithVersion(version string) Option {
	return WithMetadata("version", version)
}

// WithMetadata records one input or setting. Empty values are omitted so
// optional inputs do not show up as blank keys.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		h.Metadata[key] = value
	}
}

// New returns a Header of the given kind at the current APIVersion, stamped
// with the current UTC time.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
