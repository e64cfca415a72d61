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

package validator

import (
	"time"

	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
)

// ValidationStatus represents the overall validation outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates every check passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates one or more checks failed.
	ValidationStatusFail ValidationStatus = "fail"

	// ValidationStatusPartial indicates nothing failed but some checks warned.
	ValidationStatusPartial ValidationStatus = "partial"
)

// CheckStatus represents the outcome of a single check.
type CheckStatus string

const (
	// CheckStatusPassed indicates the check was satisfied.
	CheckStatusPassed CheckStatus = "passed"

	// CheckStatusFailed indicates the check was not satisfied.
	CheckStatusFailed CheckStatus = "failed"

	// CheckStatusWarning indicates a non-fatal problem, such as incomplete nutrition data.
	CheckStatusWarning CheckStatus = "warning"
)

// Check names.
const (
	CheckParse      = "parse"
	CheckReferences = "references"
	CheckSlug       = "slug"
	CheckCycles     = "cycles"
	CheckNutrition  = "nutrition"
)

// ValidationResult represents the complete validation outcome.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Source is the recipe root that was validated.
	Source string `json:"source" yaml:"source"`

	// Summary contains aggregate validation statistics.
	Summary ValidationSummary `json:"summary" yaml:"summary"`

	// Results contains per-recipe check details.
	Results []CheckResult `json:"results" yaml:"results"`
}

// ValidationSummary contains aggregate statistics about the validation.
type ValidationSummary struct {
	// Recipes is the number of recipe files seen, including ones that failed to parse.
	Recipes int `json:"recipes" yaml:"recipes"`

	Passed   int `json:"passed" yaml:"passed"`
	Failed   int `json:"failed" yaml:"failed"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Total    int `json:"total" yaml:"total"`

	// Status is the overall validation status.
	Status ValidationStatus `json:"status" yaml:"status"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// CheckResult is the outcome of one check on one recipe.
type CheckResult struct {
	// Recipe is the recipe id.
	Recipe string `json:"recipe" yaml:"recipe"`

	// Path is the source file, when known.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Check is the check name, e.g. "references".
	Check string `json:"check" yaml:"check"`

	Status CheckStatus `json:"status" yaml:"status"`

	// Code is the error code of a failed check.
	Code cberrors.ErrorCode `json:"code,omitempty" yaml:"code,omitempty"`

	// Message provides additional context for failures and warnings.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// NewValidationResult creates a new ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Results: make([]CheckResult, 0),
	}
}

// Failures returns the failed checks.
func (r *ValidationResult) Failures() []CheckResult {
	var out []CheckResult
	for _, c := range r.Results {
		if c.Status == CheckStatusFailed {
			out = append(out, c)
		}
	}
	return out
}

// TableHeader implements serializer.Tabular.
func (r *ValidationResult) TableHeader() []string {
	return []string{"RECIPE", "CHECK", "STATUS", "MESSAGE"}
}

// TableRows implements serializer.Tabular.
func (r *ValidationResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, c := range r.Results {
		rows = append(rows, []string{c.Recipe, c.Check, string(c.Status), c.Message})
	}
	return rows
}
