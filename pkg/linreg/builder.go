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
	"math/bits"

	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// BuildTrace unrolls the private computation into an execution trace.  Rows
// [0, n) hold the n public sample points, row n holds the prediction for
// targetX, and every row beyond repeats the prediction row so that the
// transition constraints hold across the padding region as well.  The trace
// length is the smallest power of two accommodating n+1 rows, subject to the
// engine's minimum.
//
// Observe that sample outputs are copied into the trace as given: whether
// they actually agree with the secret parameters is established later, by
// the linear transition constraint, not here.
func BuildTrace[F field.Element[F]](slope F, intercept F, sampleXs []F, sampleYs []F,
	targetX F) (*trace.ArrayTrace[F], error) {
	//
	if len(sampleXs) != len(sampleYs) {
		return nil, air.NewConfigurationError("sample arrays must have equal length (%d vs %d)",
			len(sampleXs), len(sampleYs))
	}
	//
	var (
		numSamples = uint(len(sampleXs))
		length     = traceLength(numSamples)
		predictedY = slope.Mul(targetX).Add(intercept)
		// fillRow populates a single row of trace state.
		fillRow = func(row uint, state []F) {
			state[SlopeColumn] = slope
			state[InterceptColumn] = intercept
			//
			if row < numSamples {
				state[XColumn] = sampleXs[row]
				state[YColumn] = sampleYs[row]
			} else {
				// Prediction row, repeated through the padding region.
				state[XColumn] = targetX
				state[YColumn] = predictedY
			}
		}
	)
	//
	tr := trace.Fill(ColumnNames, length,
		func(state []F) { fillRow(0, state) },
		fillRow)
	//
	return tr, nil
}

// traceLength determines the length of a trace holding n sample rows plus a
// prediction row, namely the next power of two subject to the engine's
// minimum.
func traceLength(numSamples uint) uint {
	length := nextPowerOfTwo(numSamples + 1)
	if length < air.MinTraceLength {
		length = air.MinTraceLength
	}
	//
	return length
}

// nextPowerOfTwo rounds n up to a power of two.
func nextPowerOfTwo(n uint) uint {
	if bits.OnesCount(n) <= 1 {
		return n
	}
	//
	return 1 << bits.Len(n)
}
