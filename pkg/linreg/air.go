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
	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Air defines which traces are valid encodings of the private linear model,
// given a trace shape and a public input record.  Three transition
// constraints must vanish over every adjacent row pair:
//
//	y - m·x - b    (degree 2, row internally consistent with the model)
//	m' - m         (degree 1, slope never changes)
//	b' - b         (degree 1, intercept never changes)
//
// whilst 2n+2 boundary assertions pin the sample rows and the prediction row
// to the public record.
type Air[F field.Element[F]] struct {
	context air.Context
	inputs  PublicInputs[F]
}

// NewAir constructs the AIR for a given trace shape and public input record.
// The shape must be four columns wide and long enough to hold every sample
// row plus the prediction row; the record's sample sequences must have equal
// length.
func NewAir[F field.Element[F]](info air.TraceInfo, inputs PublicInputs[F]) (*Air[F], error) {
	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	//
	numSamples := inputs.NumSamples()
	//
	if info.Width() != TraceWidth {
		return nil, air.NewConfigurationError("linear model trace requires %d columns, got %d",
			TraceWidth, info.Width())
	} else if numSamples+1 > info.Length() {
		return nil, air.NewConfigurationError("trace length %d cannot hold %d samples plus prediction",
			info.Length(), numSamples)
	}
	// Degrees must match what EvaluateTransition computes: one multiplication
	// in the linear constraint, none elsewhere.
	context := air.NewContext(info, []uint{2, 1, 1}, 2*numSamples+2).
		WithLabels("linear", "slope", "intercept")
	//
	return &Air[F]{context, inputs}, nil
}

// Context returns the shape, degree and assertion bookkeeping for this AIR.
func (p *Air[F]) Context() air.Context {
	return p.context
}

// EvaluateTransition evaluates the three transition constraints over a given
// frame.
func (p *Air[F]) EvaluateTransition(frame air.Frame[F], result []F) {
	var (
		slope     = frame.Current()[SlopeColumn]
		intercept = frame.Current()[InterceptColumn]
		x         = frame.Current()[XColumn]
		y         = frame.Current()[YColumn]
	)
	// y - m·x - b
	result[0] = y.Sub(slope.Mul(x)).Sub(intercept)
	// m' - m
	result[1] = frame.Next()[SlopeColumn].Sub(slope)
	// b' - b
	result[2] = frame.Next()[InterceptColumn].Sub(intercept)
}

// Assertions produces the boundary assertions binding the trace to the
// public input record: an (x, y) pair for each sample row, followed by the
// (x, y) pair of the prediction row.  The order is deterministic.
func (p *Air[F]) Assertions() []air.Assertion[F] {
	var (
		numSamples = p.inputs.NumSamples()
		assertions = make([]air.Assertion[F], 0, 2*numSamples+2)
	)
	//
	for i := uint(0); i < numSamples; i++ {
		assertions = append(assertions,
			air.NewAssertion(XColumn, i, p.inputs.SampleXs[i]),
			air.NewAssertion(YColumn, i, p.inputs.SampleYs[i]))
	}
	// Prediction row sits immediately after the samples.
	assertions = append(assertions,
		air.NewAssertion(XColumn, numSamples, p.inputs.XValue),
		air.NewAssertion(YColumn, numSamples, p.inputs.PredictedY))
	//
	return assertions
}

// PublicInputs returns the public input record this AIR binds traces to.
func (p *Air[F]) PublicInputs() PublicInputs[F] {
	return p.inputs
}
