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
	"strings"

	"github.com/consensys/go-linreg/pkg/util/field"
)

// ArrayTrace provides an implementation of Trace which stores columns
// contiguously as arrays.
type ArrayTrace[F field.Element[F]] struct {
	// Height of every column in the trace
	height uint
	// Columns making up this trace
	columns []arrayColumn[F]
}

// arrayColumn represents a single named column within an array trace.
type arrayColumn[F field.Element[F]] struct {
	name string
	data []F
}

// NewArrayTrace constructs a trace from one or more equal-height columns.
// Column names must be unique.
func NewArrayTrace[F field.Element[F]](names []string, columns [][]F) *ArrayTrace[F] {
	if len(names) != len(columns) || len(columns) == 0 {
		panic("malformed trace columns")
	}
	//
	height := uint(len(columns[0]))
	cols := make([]arrayColumn[F], len(columns))
	//
	for i, data := range columns {
		if uint(len(data)) != height {
			panic("trace columns have differing heights")
		}
		//
		cols[i] = arrayColumn[F]{names[i], data}
	}
	//
	return &ArrayTrace[F]{height, cols}
}

// Fill constructs a trace of the given shape by running a small state
// machine: init populates the first row, then step transforms the state once
// for each subsequent row.  The state slice handed to the callbacks is reused
// between rows, hence callbacks must not retain it.
func Fill[F field.Element[F]](names []string, height uint,
	init func(state []F), step func(row uint, state []F)) *ArrayTrace[F] {
	//
	var (
		width   = uint(len(names))
		state   = make([]F, width)
		columns = make([][]F, width)
	)
	//
	for i := range columns {
		columns[i] = make([]F, height)
	}
	// Initial row
	init(state)
	//
	for i := uint(0); i < width; i++ {
		columns[i][0] = state[i]
	}
	// Remaining rows
	for row := uint(1); row < height; row++ {
		step(row, state)
		//
		for i := uint(0); i < width; i++ {
			columns[i][row] = state[i]
		}
	}
	//
	return NewArrayTrace(names, columns)
}

// Width returns the number of columns in this trace.
func (p *ArrayTrace[F]) Width() uint {
	return uint(len(p.columns))
}

// Height returns the number of rows in this trace.
func (p *ArrayTrace[F]) Height() uint {
	return p.height
}

// Get the value of a given column at a given row.
func (p *ArrayTrace[F]) Get(col uint, row uint) F {
	return p.columns[col].data[row]
}

// Column returns the data of a given column, in row order.
func (p *ArrayTrace[F]) Column(col uint) []F {
	return p.columns[col].data
}

// ColumnName returns the name of a given column.
func (p *ArrayTrace[F]) ColumnName(col uint) string {
	return p.columns[col].name
}

// ColumnIndex returns the index of the column with the given name, or false
// if no such column exists.
func (p *ArrayTrace[F]) ColumnIndex(name string) (uint, bool) {
	for i, c := range p.columns {
		if c.name == name {
			return uint(i), true
		}
	}
	// Column does not exist
	return 0, false
}

func (p *ArrayTrace[F]) String() string {
	// Use string builder to try and make this vaguely efficient.
	var id strings.Builder
	//
	id.WriteString("{")
	//
	for i, c := range p.columns {
		if i != 0 {
			id.WriteString(",")
		}
		//
		id.WriteString(c.name)
		id.WriteString("={")
		//
		for j, val := range c.data {
			if j != 0 {
				id.WriteString(",")
			}
			//
			id.WriteString(val.String())
		}
		//
		id.WriteString("}")
	}
	//
	id.WriteString("}")
	//
	return id.String()
}
