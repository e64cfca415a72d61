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

// Package header provides the common envelope for documents emitted by the
// cookbook tools.
//
// Every emitted document (a parsed recipe, an expanded ingredient list, a
// nutrition result, a validation result) embeds a Header so consumers can tell
// what they are reading and which tool version produced it:
//
//	kind: NutritionResult
//	apiVersion: cookbook/v1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.2.0
//	  recipes: ./recipes
//	  catalog: ./catalog.yaml
//
// # Usage
//
//	type Document struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Nutrition *nutrition.Result `json:"nutrition" yaml:"nutrition"`
//	}
//
//	doc := &Document{
//	    Header: header.New(header.KindNutritionResult,
//	        header.WithVersion(version),
//	        header.WithMetadata("catalog", path)),
//	    Nutrition: res,
//	}
package header
