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

// Package air captures the essence of an Algebraic Intermediate
// Representation: the combination of transition constraints, boundary
// assertions and trace shape which fully defines the set of valid traces for
// a given computation.  This package is deliberately agnostic about what the
// computation is; a concrete system (e.g. pkg/linreg) instantiates the Air
// interface, whilst a proof engine (e.g. pkg/prover) consumes it.
package air

import (
	"fmt"
	"math/bits"

	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// MinTraceLength is the minimum number of rows any trace must have.  Proof
// engines generally require a handful of rows for their low-degree machinery,
// hence short computations are padded up to this floor.
const MinTraceLength = 8

// TraceInfo describes the shape of an execution trace, independent of its
// contents.
type TraceInfo struct {
	width  uint
	length uint
}

// NewTraceInfo constructs trace shape information, given the number of
// columns and rows.  The length must be a power of two of at least
// MinTraceLength.
func NewTraceInfo(width uint, length uint) (TraceInfo, error) {
	if width == 0 {
		return TraceInfo{}, NewConfigurationError("trace must have at least one column")
	} else if length < MinTraceLength {
		return TraceInfo{}, NewConfigurationError("trace length %d below minimum %d", length, MinTraceLength)
	} else if bits.OnesCount(length) != 1 {
		return TraceInfo{}, NewConfigurationError("trace length %d not a power of two", length)
	}
	//
	return TraceInfo{width, length}, nil
}

// TraceInfoOf extracts the shape of a given trace.
func TraceInfoOf[F field.Element[F]](tr trace.Trace[F]) (TraceInfo, error) {
	return NewTraceInfo(tr.Width(), tr.Height())
}

// Width returns the number of columns.
func (p TraceInfo) Width() uint {
	return p.width
}

// Length returns the number of rows.
func (p TraceInfo) Length() uint {
	return p.length
}

// Context brings together everything a proof engine needs to know about an
// AIR before it looks at any concrete trace: the trace shape, the declared
// degree of every transition constraint, and the number of boundary
// assertions.  Observe that constraint count and degrees are part of the
// contract: a constraint whose actual degree exceeds its declaration silently
// breaks the soundness of any engine sizing its low-degree machinery from
// this context.
type Context struct {
	info TraceInfo
	// Declared degree of each transition constraint.
	degrees []uint
	// Number of boundary assertions which will be produced.
	numAssertions uint
	// Optional handles for each transition constraint, used in failure
	// reporting.
	labels []string
}

// NewContext constructs an AIR context from a trace shape, transition
// constraint degree declarations and an assertion count.
func NewContext(info TraceInfo, degrees []uint, numAssertions uint) Context {
	if len(degrees) == 0 {
		panic("AIR must declare at least one transition constraint")
	}
	//
	return Context{info, degrees, numAssertions, nil}
}

// WithLabels attaches a handle to each transition constraint, which failure
// reports then use in place of a constraint index.  The number of labels must
// match the number of degree declarations.
func (p Context) WithLabels(labels ...string) Context {
	if len(labels) != len(p.degrees) {
		panic("one label required per transition constraint")
	}
	//
	p.labels = labels
	//
	return p
}

// Label returns the handle of a given transition constraint.
func (p Context) Label(constraint uint) string {
	if p.labels == nil {
		return fmt.Sprintf("#%d", constraint)
	}
	//
	return p.labels[constraint]
}

// TraceInfo returns the trace shape this context was built for.
func (p Context) TraceInfo() TraceInfo {
	return p.info
}

// Degrees returns the declared degree of each transition constraint.
func (p Context) Degrees() []uint {
	return p.degrees
}

// NumTransitionConstraints returns the number of declared transition
// constraints.
func (p Context) NumTransitionConstraints() uint {
	return uint(len(p.degrees))
}

// NumAssertions returns the number of boundary assertions this AIR will
// produce.  This is reported up front (i.e. before assertions are
// materialised) since engines size internal structures from it.
func (p Context) NumAssertions() uint {
	return p.numAssertions
}

// Air defines which execution traces are valid for a given computation.  Any
// valid trace must satisfy every transition constraint across every pair of
// adjacent rows, along with every boundary assertion.
type Air[F field.Element[F]] interface {
	// Context returns the shape, degree and assertion bookkeeping for this
	// AIR.
	Context() Context
	// EvaluateTransition evaluates all transition constraints over a given
	// evaluation frame, writing one field element per constraint into result.
	// A constraint holds on the frame iff its result is zero.
	EvaluateTransition(frame Frame[F], result []F)
	// Assertions returns the boundary assertions binding specific trace cells
	// to public values.  The returned order is deterministic.
	Assertions() []Assertion[F]
}
