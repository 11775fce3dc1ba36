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
package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/accumulator/merkletree"
	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/util/field"
	log "github.com/sirupsen/logrus"
)

// VerificationError is the verdict that a proof does not attest the claimed
// public inputs under the given AIR.  It is always surfaced to the caller
// and never retried: re-running a verification with unchanged inputs cannot
// change the outcome.
type VerificationError struct {
	msg string
}

// NewVerificationError constructs a verification error from a format string.
func NewVerificationError(format string, args ...any) *VerificationError {
	return &VerificationError{fmt.Sprintf(format, args...)}
}

func (p *VerificationError) Error() string {
	return p.msg
}

// Verify checks a proof against an AIR reconstructed from public inputs
// alone.  Specifically: the proof must meet the verifier's minimum security
// level, commit to a trace of the AIR's declared shape, and open every
// asserted row to values matching the AIR's boundary assertions under the
// proof's own commitment.  Any discrepancy surfaces as a VerificationError.
func Verify[F field.Element[F]](proof *Proof, a air.Air[F], acceptable AcceptableOptions) error {
	var (
		ctx  = a.Context()
		info = ctx.TraceInfo()
	)
	// Security bound
	if proof.ConjecturedSecurity() < acceptable.MinConjecturedSecurity {
		return NewVerificationError("conjectured security %d below acceptable minimum %d",
			proof.ConjecturedSecurity(), acceptable.MinConjecturedSecurity)
	}
	// Shape
	if proof.TraceWidth != info.Width() || proof.TraceLength != uint64(info.Length()) {
		return NewVerificationError("proof commits to %dx%d trace, AIR expects %dx%d",
			proof.TraceWidth, proof.TraceLength, info.Width(), info.Length())
	}
	//
	var (
		assertions = a.Assertions()
		// Rows whose Merkle path has already been authenticated.
		authenticated = make(map[uint64][][]byte)
	)
	//
	log.Debugf("verifying proof against %d assertions", len(assertions))
	//
	for _, assertion := range assertions {
		row := uint64(assertion.Row)
		//
		cells, ok := authenticated[row]
		if !ok {
			var err error
			//
			if cells, err = openRow(proof, row); err != nil {
				return err
			}
			//
			authenticated[row] = cells
		}
		// Compare asserted cell against the opened row.
		opened := field.FromBigEndianBytes[F](cells[assertion.Column])
		//
		if opened.Cmp(assertion.Value) != 0 {
			return NewVerificationError("assertion [%d,%d] not satisfied (expected %s, committed %s)",
				assertion.Column, assertion.Row, assertion.Value.String(), opened.String())
		}
	}
	//
	return nil
}

// openRow authenticates the opening of a given row against the proof's
// commitment, returning its cells.
func openRow(proof *Proof, row uint64) ([][]byte, error) {
	opening, ok := proof.OpeningOf(row)
	if !ok {
		return nil, NewVerificationError("proof does not open asserted row %d", row)
	}
	//
	cells := opening.Cells(proof.TraceWidth)
	if cells == nil {
		return nil, NewVerificationError("opening of row %d is malformed", row)
	}
	//
	if !merkletree.VerifyProof(newHasher(), proof.Commitment, opening.Path, row, proof.TraceLength) {
		return nil, NewVerificationError("opening of row %d does not match commitment", row)
	}
	//
	return cells, nil
}
