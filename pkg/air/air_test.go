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
	"testing"

	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
	"github.com/consensys/go-linreg/pkg/util/field/gf8209"
	"github.com/stretchr/testify/require"
)

// doublingAir accepts single-column traces where every row is twice its
// predecessor, and the first row is a given public value.
type doublingAir struct {
	context Context
	first   gf8209.Element
}

func newDoublingAir(t *testing.T, length uint, first uint64) *doublingAir {
	info, err := NewTraceInfo(1, length)
	require.NoError(t, err)
	//
	ctx := NewContext(info, []uint{1}, 1).WithLabels("doubling")
	//
	return &doublingAir{ctx, field.Uint64[gf8209.Element](first)}
}

func (p *doublingAir) Context() Context {
	return p.context
}

func (p *doublingAir) EvaluateTransition(frame Frame[gf8209.Element], result []gf8209.Element) {
	var (
		current = frame.Current()[0]
		next    = frame.Next()[0]
	)
	//
	result[0] = next.Sub(current.Add(current))
}

func (p *doublingAir) Assertions() []Assertion[gf8209.Element] {
	return []Assertion[gf8209.Element]{NewAssertion(0, 0, p.first)}
}

func doublingTrace(first uint64, height uint) *trace.ArrayTrace[gf8209.Element] {
	return trace.Fill([]string{"v"}, height,
		func(state []gf8209.Element) {
			state[0] = field.Uint64[gf8209.Element](first)
		},
		func(row uint, state []gf8209.Element) {
			state[0] = state[0].Add(state[0])
		})
}

func TestTraceInfo(t *testing.T) {
	// Valid shapes
	for _, length := range []uint{8, 16, 1024} {
		info, err := NewTraceInfo(4, length)
		require.NoError(t, err)
		require.Equal(t, uint(4), info.Width())
		require.Equal(t, length, info.Length())
	}
	// Invalid shapes
	for _, length := range []uint{0, 4, 12, 100} {
		_, err := NewTraceInfo(4, length)
		require.Error(t, err)
		require.IsType(t, &ConfigurationError{}, err)
	}
	// No columns
	_, err := NewTraceInfo(0, 8)
	require.Error(t, err)
}

func TestContextBookkeeping(t *testing.T) {
	info, err := NewTraceInfo(4, 8)
	require.NoError(t, err)
	//
	ctx := NewContext(info, []uint{2, 1, 1}, 10)
	require.Equal(t, uint(3), ctx.NumTransitionConstraints())
	require.Equal(t, []uint{2, 1, 1}, ctx.Degrees())
	require.Equal(t, uint(10), ctx.NumAssertions())
	require.Equal(t, "#1", ctx.Label(1))
	//
	ctx = ctx.WithLabels("linear", "slope", "intercept")
	require.Equal(t, "slope", ctx.Label(1))
}

func TestAcceptsValidTrace(t *testing.T) {
	a := newDoublingAir(t, 8, 3)
	require.NoError(t, Accepts[gf8209.Element](a, doublingTrace(3, 8)))
}

func TestRejectsBrokenTransition(t *testing.T) {
	a := newDoublingAir(t, 8, 3)
	// Corrupt row 5
	tr := doublingTrace(3, 8)
	tr.Column(0)[5] = field.Uint64[gf8209.Element](1)
	//
	err := Accepts[gf8209.Element](a, tr)
	require.Error(t, err)
	// Frame (4,5) is the first to break
	failure, ok := err.(*ConstraintFailure)
	require.True(t, ok)
	require.Equal(t, uint(4), failure.Row)
	require.Equal(t, "doubling", failure.Handle)
}

func TestRejectsBrokenAssertion(t *testing.T) {
	a := newDoublingAir(t, 8, 3)
	// Trace is internally consistent, but starts from the wrong value.
	err := Accepts[gf8209.Element](a, doublingTrace(5, 8))
	require.Error(t, err)
	//
	failure, ok := err.(*AssertionFailure)
	require.True(t, ok)
	require.Equal(t, uint(0), failure.Row)
	require.Equal(t, "3", failure.Expected)
	require.Equal(t, "5", failure.Got)
}

func TestRejectsWrongShape(t *testing.T) {
	a := newDoublingAir(t, 16, 3)
	//
	err := Accepts[gf8209.Element](a, doublingTrace(3, 8))
	require.Error(t, err)
	require.IsType(t, &ConfigurationError{}, err)
}

func TestFrameAt(t *testing.T) {
	tr := doublingTrace(1, 8)
	frame := FrameAt[gf8209.Element](tr, 3)
	require.Equal(t, uint64(8), frame.Current()[0].Uint64())
	require.Equal(t, uint64(16), frame.Next()[0].Uint64())
}
