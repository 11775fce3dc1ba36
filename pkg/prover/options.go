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
	"math/bits"

	"github.com/consensys/go-linreg/pkg/air"
)

// maxConjecturedSecurity caps the security estimate, since no amount of
// querying buys more than the collision resistance of the underlying
// 256-bit hash.
const maxConjecturedSecurity = 128

// ProofOptions parameterises proof generation.  The options are folded into
// the proof itself, so a verifier can hold generated proofs against its own
// minimum acceptable security level.
type ProofOptions struct {
	// NumQueries is the number of positions a succinct engine would query;
	// it feeds the conjectured security estimate.
	NumQueries uint `cbor:"1,keyasint"`
	// BlowupFactor is the domain blowup a succinct engine would use; must be
	// a power of two greater than one.
	BlowupFactor uint `cbor:"2,keyasint"`
	// GrindingFactor adds proof-of-work bits to the security estimate.
	GrindingFactor uint `cbor:"3,keyasint"`
}

// DefaultProofOptions returns the options used when a caller expresses no
// preference: 32 queries against an 8x blowup, no grinding.
func DefaultProofOptions() ProofOptions {
	return ProofOptions{NumQueries: 32, BlowupFactor: 8, GrindingFactor: 0}
}

// Validate checks these options are internally consistent.
func (p ProofOptions) Validate() error {
	if p.NumQueries == 0 {
		return air.NewConfigurationError("proof options require at least one query")
	} else if p.BlowupFactor < 2 || bits.OnesCount(p.BlowupFactor) != 1 {
		return air.NewConfigurationError("blowup factor %d not a power of two greater than one",
			p.BlowupFactor)
	}
	//
	return nil
}

// ConjecturedSecurity estimates the security level (in bits) these options
// provide, using the standard FRI-style accounting of
// queries·log2(blowup) + grinding.
func (p ProofOptions) ConjecturedSecurity() uint {
	security := p.NumQueries*uint(bits.TrailingZeros(p.BlowupFactor)) + p.GrindingFactor
	if security > maxConjecturedSecurity {
		security = maxConjecturedSecurity
	}
	//
	return security
}

// AcceptableOptions expresses the minimum a verifier will accept from a
// proof, namely a lower bound on its conjectured security level.
type AcceptableOptions struct {
	// MinConjecturedSecurity in bits.
	MinConjecturedSecurity uint
}
