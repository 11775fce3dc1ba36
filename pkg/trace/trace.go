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
package trace

import (
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Trace describes a rectangular table of field elements representing a
// computation unrolled over discrete steps.  Columns hold the machine
// registers, rows hold the state of the machine at each step.  A trace is
// constructed in full by whatever builds it and is never mutated afterwards.
type Trace[F field.Element[F]] interface {
	// Width returns the number of columns in this trace.
	Width() uint
	// Height returns the number of rows in this trace.  Every column has the
	// same height.
	Height() uint
	// Get the value of a given column at a given row.  This will panic if
	// either index is out-of-bounds, since a well-formed consumer always
	// operates within the shape it was given.
	Get(col uint, row uint) F
	// Column returns the data of a given column, in row order.  The returned
	// slice must not be modified.
	Column(col uint) []F
	// ColumnName returns the name of a given column.
	ColumnName(col uint) string
}
