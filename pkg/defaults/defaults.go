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

package defaults

// Recipe loading.
const (
	// ParseConcurrency bounds the number of recipe files parsed at once.
	ParseConcurrency = 8

	// ParseCacheSize is the number of parsed recipes kept by the loader cache.
	ParseCacheSize = 1024

	// RecipeExtension is the file extension of recipe source files.
	RecipeExtension = ".md"
)

// Nutrition catalog.
const (
	// CatalogUnitless is the portion key used for bare counts ("3 eggs").
	CatalogUnitless = "~unitless"

	// CatalogBasisKey is the nutrients-block key holding the basis weight in grams.
	CatalogBasisKey = "basis_grams"
)
