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
)

// ConfigurationError signals malformed inputs to trace or AIR construction,
// such as mismatched sample arrays or a trace of the wrong shape.  Such
// errors are raised before any field arithmetic takes place; data is never
// silently truncated to fit.
type ConfigurationError struct {
	msg string
}

// NewConfigurationError constructs a configuration error from a format
// string.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{fmt.Sprintf(format, args...)}
}

func (p *ConfigurationError) Error() string {
	return p.msg
}

// ConstraintFailure provides structural information about a transition
// constraint which does not hold on a given trace.
type ConstraintFailure struct {
	// Handle of the failing constraint.
	Handle string
	// Index of the failing constraint within the AIR's declared order.
	Constraint uint
	// Row on which the constraint failed, identifying the frame (Row, Row+1).
	Row uint
}

func (p *ConstraintFailure) Error() string {
	return fmt.Sprintf("constraint \"%s\" does not hold (row %d)", p.Handle, p.Row)
}

// AssertionFailure provides structural information about a boundary assertion
// which does not hold on a given trace.
type AssertionFailure struct {
	// Column of the asserted cell.
	Column uint
	// Row of the asserted cell.
	Row uint
	// Expected value of the cell.
	Expected string
	// Got is the value the trace actually holds.
	Got string
}

func (p *AssertionFailure) Error() string {
	return fmt.Sprintf("assertion [%d,%d] does not hold (expected %s, got %s)",
		p.Column, p.Row, p.Expected, p.Got)
}
