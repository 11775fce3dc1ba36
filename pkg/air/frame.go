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

// Frame provides the view of a trace over which transition constraints are
// evaluated, namely the values of every column at two adjacent rows.
type Frame[F field.Element[F]] struct {
	current []F
	next    []F
}

// NewFrame constructs a frame directly from its two rows.  Both rows must
// have the same width.
func NewFrame[F field.Element[F]](current []F, next []F) Frame[F] {
	if len(current) != len(next) {
		panic("frame rows have differing widths")
	}
	//
	return Frame[F]{current, next}
}

// FrameAt reads the frame spanning rows (row, row+1) out of a given trace.
// The given row must not be the last row of the trace.
func FrameAt[F field.Element[F]](tr trace.Trace[F], row uint) Frame[F] {
	var (
		width   = tr.Width()
		current = make([]F, width)
		next    = make([]F, width)
	)
	//
	for col := uint(0); col < width; col++ {
		current[col] = tr.Get(col, row)
		next[col] = tr.Get(col, row+1)
	}
	//
	return Frame[F]{current, next}
}

// Current returns the values of every column at the first row of this frame.
func (p Frame[F]) Current() []F {
	return p.current
}

// Next returns the values of every column at the second row of this frame.
func (p Frame[F]) Next() []F {
	return p.next
}
