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
	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
)

// Engine abstracts a proof system: something which turns a valid trace into
// a proof, and checks proofs against the AIR a verifier reconstructs from
// public inputs.  Both operations are synchronous and potentially
// long-running; neither retains the values handed to it.
type Engine[F field.Element[F]] interface {
	// Prove generates a proof that a trace satisfies an AIR, or fails with
	// the constraint violation preventing it.
	Prove(a air.Air[F], tr trace.Trace[F]) (*Proof, error)
	// Verify checks a proof against an AIR, subject to the verifier's
	// minimum acceptable security level.
	Verify(proof *Proof, a air.Air[F], acceptable AcceptableOptions) error
}

// LocalEngine is the bundled Engine implementation, binding assertions to a
// Merkle commitment over the trace (see the package documentation for its
// guarantees and non-guarantees).
type LocalEngine[F field.Element[F]] struct {
	options ProofOptions
}

// NewLocalEngine constructs a local engine generating proofs with the given
// options.
func NewLocalEngine[F field.Element[F]](options ProofOptions) LocalEngine[F] {
	return LocalEngine[F]{options}
}

// Prove implementation for the Engine interface.
func (p LocalEngine[F]) Prove(a air.Air[F], tr trace.Trace[F]) (*Proof, error) {
	return Prove(a, tr, p.options)
}

// Verify implementation for the Engine interface.
func (p LocalEngine[F]) Verify(proof *Proof, a air.Air[F], acceptable AcceptableOptions) error {
	return Verify(proof, a, acceptable)
}
