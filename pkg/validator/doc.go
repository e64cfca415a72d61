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

// Package validator checks a whole recipe library at build time.
//
// # Overview
//
// Parsing stops at the first problem in a recipe, but an author fixing a
// library wants every problem at once. The validator runs each check on each
// recipe and collects the outcomes into one ValidationResult document.
//
// # Checks
//
//   - parse - the file parsed (failures come from store.Library.Errors)
//   - references - every cross-reference resolves
//   - slug - the file name matches the slugified title
//   - cycles - no recipe includes itself through cross-references
//   - nutrition - every ingredient resolves against the catalog (optional)
//
// # Usage
//
//	lib, err := store.Load(ctx, "recipes")
//	if err != nil {
//	    return err
//	}
//	v := validator.New(validator.WithVersion(version))
//	result, err := v.Validate(ctx, lib)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s\n", result.Summary.Status)
//	for _, f := range result.Failures() {
//	    fmt.Printf("  %s %s: %s\n", f.Recipe, f.Check, f.Message)
//	}
//
// # Result Status
//
// The result fails if any check failed. Incomplete nutrition is only a
// warning and makes the result "partial", since partial nutrition data is
// still displayable.
package validator
