// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package linreg

import (
	"fmt"

	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// maxInferredSamples caps how many rows InferPublicInputs will classify as
// samples before treating the next candidate as the prediction row.  The cap
// is a fixed constant unrelated to the trace's actual sample count, which
// makes the whole procedure reliable only for traces holding exactly this
// many samples (see InferPublicInputs).  Kept as-is for compatibility with
// existing callers; carrying the record alongside the trace is the supported
// alternative.
const maxInferredSamples = 4

// InferPublicInputs reconstructs, on a best-effort basis, the public input
// record implied by a trace.  It exists for prover-side callers holding only
// a constructed trace and no side channel of structural metadata.
//
// The scan accumulates rows whose (x, y) satisfies the row's own slope and
// intercept cells as samples, until maxInferredSamples have been collected;
// the next such row is then taken as the prediction.  Consequently the result
// is only correct when the true sample count equals maxInferredSamples — for
// any other count the returned record is structurally wrong.  Callers with
// access to the authoritative record can detect divergence via
// CheckInference; callers without one must not rely on this procedure outside
// the fixed-cap case.
func InferPublicInputs[F field.Element[F]](tr trace.Trace[F]) PublicInputs[F] {
	var (
		sampleXs = []F{tr.Get(XColumn, 0)}
		sampleYs = []F{tr.Get(YColumn, 0)}
	)
	//
	for row := uint(1); row < tr.Height(); row++ {
		var (
			x = tr.Get(XColumn, row)
			y = tr.Get(YColumn, row)
		)
		// Skip x values already recorded as samples.
		if containsElement(sampleXs, x) {
			continue
		}
		// Check the row against its own slope / intercept cells.
		var (
			slope     = tr.Get(SlopeColumn, row)
			intercept = tr.Get(InterceptColumn, row)
			expectedY = slope.Mul(x).Add(intercept)
		)
		//
		if y.Cmp(expectedY) == 0 {
			if uint(len(sampleXs)) < maxInferredSamples {
				sampleXs = append(sampleXs, x)
				sampleYs = append(sampleYs, y)
			} else {
				// Cap reached, so this must be the prediction.
				return PublicInputs[F]{x, y, sampleXs, sampleYs}
			}
		}
	}
	// Scan completed without hitting the cap; fall back on the final row as
	// the prediction.
	var (
		last = tr.Height() - 1
	)
	//
	return PublicInputs[F]{tr.Get(XColumn, last), tr.Get(YColumn, last), sampleXs, sampleYs}
}

// InferenceMismatchError reports that an inferred public input record
// diverges from the authoritative one.  This indicates the trace was built
// with a sample count the inference procedure does not support; it is a
// reportable defect, not a recoverable condition.
type InferenceMismatchError struct {
	// Field names the first diverging component of the record.
	Field string
}

func (p *InferenceMismatchError) Error() string {
	return fmt.Sprintf("inferred public inputs diverge from authoritative record (%s)", p.Field)
}

// CheckInference compares an inferred public input record against the
// authoritative one, returning an InferenceMismatchError naming the first
// divergence.  The two must agree whenever the originating trace was built
// honestly with exactly maxInferredSamples samples.
func CheckInference[F field.Element[F]](inferred PublicInputs[F], authoritative PublicInputs[F]) error {
	switch {
	case inferred.XValue.Cmp(authoritative.XValue) != 0:
		return &InferenceMismatchError{"x_value"}
	case inferred.PredictedY.Cmp(authoritative.PredictedY) != 0:
		return &InferenceMismatchError{"predicted_y"}
	case !equalElements(inferred.SampleXs, authoritative.SampleXs):
		return &InferenceMismatchError{"sample_x_values"}
	case !equalElements(inferred.SampleYs, authoritative.SampleYs):
		return &InferenceMismatchError{"sample_y_values"}
	}
	//
	return nil
}

func containsElement[F field.Element[F]](elements []F, val F) bool {
	for _, ith := range elements {
		if ith.Cmp(val) == 0 {
			return true
		}
	}
	//
	return false
}

func equalElements[F field.Element[F]](lhs []F, rhs []F) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if lhs[i].Cmp(rhs[i]) != 0 {
			return false
		}
	}
	//
	return true
}
