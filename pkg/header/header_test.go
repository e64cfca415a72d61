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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		opts []Option
		want map[string]string
	}{
		{
			name: "kind only",
			kind: KindRecipe,
			want: map[string]string{},
		},
		{
			name: "version and inputs",
			kind: KindNutritionResult,
			opts: []Option{WithVersion("v1.2.3"), WithMetadata("recipe", "pizza-dough"), WithMetadata("catalog", "catalog.yaml")},
			want: map[string]string{"version": "v1.2.3", "recipe": "pizza-dough", "catalog": "catalog.yaml"},
		},
		{
			name: "empty values omitted",
			kind: KindValidationResult,
			opts: []Option{WithVersion(""), WithMetadata("catalog", "")},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(tt.kind, tt.opts...)

			assert.Equal(t, tt.kind, h.Kind)
			assert.Equal(t, APIVersion, h.APIVersion)

			ts, ok := h.Metadata["timestamp"]
			assert.True(t, ok)
			_, err := time.Parse(time.RFC3339, ts)
			assert.NoError(t, err)

			delete(h.Metadata, "timestamp")
			assert.Equal(t, tt.want, h.Metadata)
		})
	}
}
