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
	"github.com/fxamacker/cbor/v2"
)

// Opening reveals a single trace row together with its authentication path
// back to the proof's commitment.  Path[0] holds the row itself (every cell,
// fixed-width big-endian); the remaining entries are the sibling hashes of
// the Merkle path.
type Opening struct {
	// Row index within the trace.
	Row uint64 `cbor:"1,keyasint"`
	// Path is the Merkle proof set for this row.
	Path [][]byte `cbor:"2,keyasint"`
}

// Cells splits the opened row into its per-column cell encodings.
func (p *Opening) Cells(width uint) [][]byte {
	if len(p.Path) == 0 || uint(len(p.Path[0])) != width*cellBytes {
		return nil
	}
	//
	var (
		row   = p.Path[0]
		cells = make([][]byte, width)
	)
	//
	for i := uint(0); i < width; i++ {
		cells[i] = row[i*cellBytes : (i+1)*cellBytes]
	}
	//
	return cells
}

// Proof attests that a committed execution trace satisfies an AIR, by
// binding every asserted row to a vector commitment over the full trace.
// The trace itself is never included; only the asserted rows are revealed.
type Proof struct {
	// TraceWidth of the committed trace.
	TraceWidth uint `cbor:"1,keyasint"`
	// TraceLength of the committed trace.
	TraceLength uint64 `cbor:"2,keyasint"`
	// Commitment is the Merkle root over all trace rows.
	Commitment []byte `cbor:"3,keyasint"`
	// Openings of every asserted row, in ascending row order.
	Openings []Opening `cbor:"4,keyasint"`
	// Options the proof was generated with.
	Options ProofOptions `cbor:"5,keyasint"`
}

// ConjecturedSecurity returns the security level (in bits) this proof
// claims, as determined by its generation options.
func (p *Proof) ConjecturedSecurity() uint {
	return p.Options.ConjecturedSecurity()
}

// OpeningOf returns the opening of a given row, or false if the proof does
// not open that row.
func (p *Proof) OpeningOf(row uint64) (*Opening, bool) {
	for i := range p.Openings {
		if p.Openings[i].Row == row {
			return &p.Openings[i], true
		}
	}
	//
	return nil, false
}

// proofAlias mirrors Proof without its BinaryMarshaler methods, so that
// cbor encodes the struct fields instead of recursing into MarshalBinary.
type proofAlias Proof

// MarshalBinary encodes this proof into its canonical CBOR form.
func (p *Proof) MarshalBinary() ([]byte, error) {
	return cbor.Marshal((*proofAlias)(p))
}

// UnmarshalBinary decodes a proof from its canonical CBOR form.
func (p *Proof) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, (*proofAlias)(p))
}
