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

// Package prover implements the proof-engine boundary of the system: given
// an execution trace and the AIR it should satisfy, Prove emits a proof
// binding the AIR's boundary assertions to a vector commitment over the
// whole trace; Verify checks such a proof against an AIR reconstructed from
// public inputs alone.
//
// The engine commits to trace rows with a blake2b Merkle tree and opens
// exactly the asserted rows, so a proof reveals nothing beyond what the
// assertions already disclose.  It makes no succinctness claim: transition
// constraints are checked directly against the trace at proving time, rather
// than through a low-degree argument.  The boundary is shaped so a succinct
// engine can replace this one without disturbing its callers.
package prover

import (
	"bytes"
	"hash"
	"sort"

	"github.com/consensys/gnark-crypto/accumulator/merkletree"
	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

// cellBytes is the fixed width of a single cell within a committed row.
// Cells are big-endian and left-padded, accommodating fields up to 256 bits.
const cellBytes = 32

// Prove generates a proof that a given trace satisfies a given AIR.  The
// trace must satisfy every transition constraint and boundary assertion; if
// it does not, the corresponding ConstraintFailure (resp. AssertionFailure)
// is returned and no proof is produced.
func Prove[F field.Element[F]](a air.Air[F], tr trace.Trace[F], options ProofOptions) (*Proof, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	// Establish the trace is actually valid.  Proving an invalid trace is
	// always a caller bug, never something to paper over.
	if err := air.Accepts(a, tr); err != nil {
		return nil, err
	}
	//
	var (
		ctx  = a.Context()
		data = traceBytes(tr)
	)
	//
	log.Debugf("proving %dx%d trace (%d assertions)", tr.Width(), tr.Height(), ctx.NumAssertions())
	// Open each asserted row exactly once.
	rows := assertedRows(a.Assertions())
	//
	var (
		commitment []byte
		openings   = make([]Opening, 0, len(rows))
	)
	//
	for _, row := range rows {
		root, path, err := proveRow(data, tr.Width(), uint64(row))
		if err != nil {
			return nil, err
		}
		//
		commitment = root
		openings = append(openings, Opening{uint64(row), path})
	}
	// Degenerate case: an AIR without assertions still commits to its trace.
	if commitment == nil {
		root, _, err := proveRow(data, tr.Width(), 0)
		if err != nil {
			return nil, err
		}
		//
		commitment = root
	}
	//
	return &Proof{
		TraceWidth:  tr.Width(),
		TraceLength: uint64(tr.Height()),
		Commitment:  commitment,
		Openings:    openings,
		Options:     options,
	}, nil
}

// proveRow builds the Merkle root over all trace rows along with the
// authentication path of a given row.
func proveRow(data []byte, width uint, row uint64) ([]byte, [][]byte, error) {
	root, path, _, err := merkletree.BuildReaderProof(
		bytes.NewReader(data), newHasher(), int(width*cellBytes), row)
	//
	return root, path, err
}

// newHasher returns the hash used for row commitments.  blake2b-256 never
// fails with a nil key.
func newHasher() hash.Hash {
	h, _ := blake2b.New256(nil)
	//
	return h
}

// traceBytes serialises a trace row-by-row, each cell in fixed-width
// big-endian form.
func traceBytes[F field.Element[F]](tr trace.Trace[F]) []byte {
	var (
		width = tr.Width()
		data  = make([]byte, 0, uint(tr.Height())*width*cellBytes)
	)
	//
	for row := uint(0); row < tr.Height(); row++ {
		for col := uint(0); col < width; col++ {
			data = append(data, padCell(tr.Get(col, row).Bytes())...)
		}
	}
	//
	return data
}

// padCell left-pads a big-endian cell encoding to the fixed cell width.
func padCell(bytes []byte) []byte {
	if len(bytes) > cellBytes {
		panic("field element exceeds cell width")
	}
	//
	cell := make([]byte, cellBytes)
	copy(cell[cellBytes-len(bytes):], bytes)
	//
	return cell
}

// assertedRows collects the distinct rows touched by a set of assertions, in
// ascending order.
func assertedRows[F field.Element[F]](assertions []air.Assertion[F]) []uint {
	var (
		seen = make(map[uint]bool)
		rows []uint
	)
	//
	for _, a := range assertions {
		if !seen[a.Row] {
			seen[a.Row] = true
			rows = append(rows, a.Row)
		}
	}
	//
	sort.Slice(rows, func(i, j int) bool { return rows[i] < rows[j] })
	//
	return rows
}
