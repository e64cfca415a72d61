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
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mchmarny/cookbook/pkg/crossref"
	cberrors "github.com/mchmarny/cookbook/pkg/errors"
	"github.com/mchmarny/cookbook/pkg/header"
	"github.com/mchmarny/cookbook/pkg/nutrition"
	"github.com/mchmarny/cookbook/pkg/recipe"
	"github.com/mchmarny/cookbook/pkg/store"
)

// Validator checks every recipe in a library and reports all problems at once.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	calculator *nutrition.Calculator
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithNutrition enables the nutrition check: recipes whose nutrition cannot
// be fully resolved against catalog are reported as warnings.
func WithNutrition(catalog *nutrition.Catalog, omit ...string) Option {
	return func(v *Validator) {
		if catalog != nil {
			v.calculator = nutrition.NewCalculator(catalog, nutrition.WithOmit(omit...))
		}
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs every check against lib. Files that failed to parse are
// reported as failed parse checks; every parsed recipe then gets the
// reference, slug and cycle checks, and the nutrition check when enabled.
func (v *Validator) Validate(ctx context.Context, lib *store.Library) (*ValidationResult, error) {
	start := time.Now()

	if lib == nil {
		return nil, cberrors.New(cberrors.ErrCodeInvalidRequest, "library cannot be nil")
	}

	result := NewValidationResult()
	result.Header = header.New(header.KindValidationResult,
		header.WithVersion(v.Version),
		header.WithMetadata("recipes", strconv.Itoa(len(lib.Recipes)+len(lib.Errors))))

	for _, fe := range lib.Errors {
		result.add(failed(fe.ID, fe.Path, CheckParse, fe.Err))
	}

	for _, slug := range lib.Recipes.Slugs() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, cr := range v.checkRecipe(lib.Recipes[slug], lib.Recipes) {
			result.add(cr)
		}
	}

	result.Summary.Recipes = len(lib.Recipes) + len(lib.Errors)
	result.Summary.Total = len(result.Results)
	result.Summary.Duration = time.Since(start)

	switch {
	case result.Summary.Failed > 0:
		result.Summary.Status = ValidationStatusFail
	case result.Summary.Warnings > 0:
		result.Summary.Status = ValidationStatusPartial
	default:
		result.Summary.Status = ValidationStatusPass
	}

	slog.Debug("validation completed",
		"recipes", result.Summary.Recipes,
		"passed", result.Summary.Passed,
		"failed", result.Summary.Failed,
		"warnings", result.Summary.Warnings,
		"status", result.Summary.Status,
		"duration", result.Summary.Duration)

	return result, nil
}

func (r *ValidationResult) add(cr CheckResult) {
	r.Results = append(r.Results, cr)
	switch cr.Status {
	case CheckStatusPassed:
		r.Summary.Passed++
	case CheckStatusFailed:
		r.Summary.Failed++
	case CheckStatusWarning:
		r.Summary.Warnings++
	}
}

func (v *Validator) checkRecipe(r *recipe.Recipe, m crossref.Map) []CheckResult {
	out := []CheckResult{
		outcome(r.ID, CheckReferences, crossref.ValidateReferences(r, m)),
		outcome(r.ID, CheckSlug, crossref.ValidateSlug(r)),
	}

	cycles := outcome(r.ID, CheckCycles, crossref.DetectCycles(r, m))
	out = append(out, cycles)

	if v.calculator == nil || cycles.Status == CheckStatusFailed {
		return out
	}

	res := v.calculator.Calculate(r, m)
	if res.Complete() {
		return append(out, CheckResult{Recipe: r.ID, Check: CheckNutrition, Status: CheckStatusPassed})
	}
	slog.Warn("incomplete nutrition",
		"recipe", r.ID,
		"missing", res.MissingIngredients,
		"partial", res.PartialIngredients)
	return append(out, CheckResult{
		Recipe:  r.ID,
		Check:   CheckNutrition,
		Status:  CheckStatusWarning,
		Message: fmt.Sprintf("missing: %v, partial: %v", res.MissingIngredients, res.PartialIngredients),
	})
}

func outcome(id, check string, err error) CheckResult {
	if err != nil {
		return failed(id, "", check, err)
	}
	return CheckResult{Recipe: id, Check: check, Status: CheckStatusPassed}
}

func failed(id, path, check string, err error) CheckResult {
	slog.Debug("check failed", "recipe", id, "check", check, "error", err)
	return CheckResult{
		Recipe:  id,
		Path:    path,
		Check:   check,
		Status:  CheckStatusFailed,
		Code:    cberrors.CodeOf(err),
		Message: message(err),
	}
}

// message drops the "[CODE]" prefix since the code has its own field.
func message(err error) string {
	var se *cberrors.StructuredError
	if stderrors.As(err, &se) {
		if se.Cause != nil {
			return fmt.Sprintf("%s: %v", se.Message, se.Cause)
		}
		return se.Message
	}
	return err.Error()
}
