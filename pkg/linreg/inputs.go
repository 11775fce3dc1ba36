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

// Package linreg defines the constraint system for a private linear model
// y = m·x + b.  A party holding the secret parameters (m, b) unrolls the
// computation into a four-column execution trace; the AIR defined here then
// binds that trace to a set of publicly known sample points together with a
// claimed prediction, without revealing m or b.
package linreg

import (
	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Column layout of a linear model trace.
const (
	// SlopeColumn holds the secret slope m, constant across all rows.
	SlopeColumn uint = iota
	// InterceptColumn holds the secret intercept b, constant across all rows.
	InterceptColumn
	// XColumn holds the model input of each step.
	XColumn
	// YColumn holds the model output of each step.
	YColumn
	// TraceWidth is the number of columns in a linear model trace.
	TraceWidth
)

// ColumnNames gives the column names of a linear model trace, in column
// order.
var ColumnNames = []string{"slope", "intercept", "x", "y"}

// PublicInputs is the structured public data a verifier needs, independent of
// the private trace: the query point, the claimed prediction for it, and the
// sample points the model is bound to.
type PublicInputs[F field.Element[F]] struct {
	// XValue is the query point for which a prediction is claimed.
	XValue F
	// PredictedY is the claimed model output at XValue.
	PredictedY F
	// SampleXs holds the inputs of the public sample points, in order.
	SampleXs []F
	// SampleYs holds the outputs of the public sample points, in the same
	// order (and hence of the same length) as SampleXs.
	SampleYs []F
}

// NumSamples returns the number of public sample points.
func (p *PublicInputs[F]) NumSamples() uint {
	return uint(len(p.SampleXs))
}

// Validate checks the structural invariant of a public input record, namely
// that the two sample sequences have equal length.
func (p *PublicInputs[F]) Validate() error {
	if len(p.SampleXs) != len(p.SampleYs) {
		return air.NewConfigurationError("sample arrays must have equal length (%d vs %d)",
			len(p.SampleXs), len(p.SampleYs))
	}
	//
	return nil
}

// ToElements flattens this record into its canonical fixed-order sequence
// [x_value, predicted_y, sample_xs..., sample_ys...].  No length prefix is
// included; the sample count must be agreed out-of-band by whoever consumes
// the sequence.
func (p *PublicInputs[F]) ToElements() []F {
	elements := make([]F, 0, 2+len(p.SampleXs)+len(p.SampleYs))
	elements = append(elements, p.XValue, p.PredictedY)
	elements = append(elements, p.SampleXs...)
	elements = append(elements, p.SampleYs...)
	//
	return elements
}
