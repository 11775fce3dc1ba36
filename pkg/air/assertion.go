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
	"fmt"

	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Assertion fixes a specific trace cell to an exact (public) value.  Unlike
// transition constraints, which relate adjacent rows to each other,
// assertions bind the trace to data the verifier knows.
type Assertion[F field.Element[F]] struct {
	// Column of the asserted cell.
	Column uint
	// Row of the asserted cell.
	Row uint
	// Value the cell is required to hold.
	Value F
}

// NewAssertion constructs an assertion against a single trace cell.
func NewAssertion[F field.Element[F]](column uint, row uint, value F) Assertion[F] {
	return Assertion[F]{column, row, value}
}

// Check determines whether a given trace satisfies this assertion, returning
// an AssertionFailure otherwise.
func (p Assertion[F]) Check(tr trace.Trace[F]) error {
	actual := tr.Get(p.Column, p.Row)
	//
	if actual.Cmp(p.Value) != 0 {
		return &AssertionFailure{
			Column:   p.Column,
			Row:      p.Row,
			Expected: p.Value.String(),
			Got:      actual.String(),
		}
	}
	//
	return nil
}

func (p Assertion[F]) String() string {
	return fmt.Sprintf("(assert [%d,%d] %s)", p.Column, p.Row, p.Value.String())
}
