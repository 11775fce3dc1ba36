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
package air

import (
	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Accepts checks whether a given trace satisfies a given AIR.  Specifically,
// every transition constraint must vanish (i.e. evaluate to zero) over every
// pair of adjacent rows, and every boundary assertion must hold.  The first
// violation encountered is reported as a ConstraintFailure (resp.
// AssertionFailure); a trace of the wrong shape is reported as a
// ConfigurationError.
func Accepts[F field.Element[F]](a Air[F], tr trace.Trace[F]) error {
	var (
		ctx  = a.Context()
		info = ctx.TraceInfo()
	)
	// Sanity check trace shape
	if tr.Width() != info.Width() || tr.Height() != info.Length() {
		return NewConfigurationError("trace shape %dx%d does not match AIR context %dx%d",
			tr.Width(), tr.Height(), info.Width(), info.Length())
	}
	// Check transition constraints across all adjacent row pairs
	if err := holdsGlobally(a, tr); err != nil {
		return err
	}
	// Check boundary assertions
	for _, assertion := range a.Assertions() {
		if err := assertion.Check(tr); err != nil {
			return err
		}
	}
	// Success
	return nil
}

// holdsGlobally checks whether every transition constraint vanishes over
// every adjacent row pair of a trace.  If not, report an appropriate failure.
func holdsGlobally[F field.Element[F]](a Air[F], tr trace.Trace[F]) error {
	var (
		ctx    = a.Context()
		result = make([]F, ctx.NumTransitionConstraints())
	)
	//
	for row := uint(0); row+1 < tr.Height(); row++ {
		a.EvaluateTransition(FrameAt(tr, row), result)
		//
		for k, val := range result {
			if !val.IsZero() {
				return &ConstraintFailure{ctx.Label(uint(k)), uint(k), row}
			}
		}
	}
	// Success
	return nil
}
