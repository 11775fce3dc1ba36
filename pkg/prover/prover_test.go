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
	"testing"

	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/linreg"
	"github.com/consensys/go-linreg/pkg/trace"
	"github.com/consensys/go-linreg/pkg/util/field"
	"github.com/consensys/go-linreg/pkg/util/field/bls12_377"
	"github.com/consensys/go-linreg/pkg/util/field/gf8209"
	"github.com/stretchr/testify/require"
)

// fixture builds the y = 3x + 7 reference instance: four public samples and
// a prediction for x = 6.
func fixture[F field.Element[F]](t *testing.T) (*trace.ArrayTrace[F], *linreg.Air[F]) {
	var (
		slope     = field.Uint64[F](3)
		intercept = field.Uint64[F](7)
		sampleXs  = []F{field.Uint64[F](1), field.Uint64[F](2), field.Uint64[F](4), field.Uint64[F](5)}
		sampleYs  = []F{field.Uint64[F](10), field.Uint64[F](13), field.Uint64[F](19), field.Uint64[F](22)}
		targetX   = field.Uint64[F](6)
	)
	//
	tr, err := linreg.BuildTrace(slope, intercept, sampleXs, sampleYs, targetX)
	require.NoError(t, err)
	//
	info, err := air.TraceInfoOf[F](tr)
	require.NoError(t, err)
	//
	a, err := linreg.NewAir(info, linreg.PublicInputs[F]{
		XValue:     targetX,
		PredictedY: field.Uint64[F](25),
		SampleXs:   sampleXs,
		SampleYs:   sampleYs,
	})
	require.NoError(t, err)
	//
	return tr, a
}

func acceptable() AcceptableOptions {
	return AcceptableOptions{MinConjecturedSecurity: 95}
}

func TestProveVerifyRoundTrip(t *testing.T) {
	testProveVerifyRoundTrip[gf8209.Element](t)
	testProveVerifyRoundTrip[bls12_377.Element](t)
}

func testProveVerifyRoundTrip[F field.Element[F]](t *testing.T) {
	tr, a := fixture[F](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	require.NoError(t, Verify(proof, a, acceptable()))
}

func TestEngineRoundTrip(t *testing.T) {
	var engine Engine[gf8209.Element] = NewLocalEngine[gf8209.Element](DefaultProofOptions())
	//
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := engine.Prove(a, tr)
	require.NoError(t, err)
	require.NoError(t, engine.Verify(proof, a, acceptable()))
}

func TestProveRejectsInvalidTrace(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	// Break the linear relation on row 0.
	tr.Column(linreg.YColumn)[0] = field.Uint64[gf8209.Element](11)
	//
	_, err := Prove[gf8209.Element](a, tr, DefaultProofOptions())
	require.Error(t, err)
	//
	failure, ok := err.(*air.ConstraintFailure)
	require.True(t, ok)
	require.Equal(t, "linear", failure.Handle)
	require.Equal(t, uint(0), failure.Row)
}

func TestVerifyRejectsTamperedRecord(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	// Re-derive the AIR from a record whose first sample output was tampered
	// with, leaving the proof (and hence the committed trace) unchanged.
	inputs := a.PublicInputs()
	inputs.SampleYs = append([]gf8209.Element{}, inputs.SampleYs...)
	inputs.SampleYs[0] = field.Uint64[gf8209.Element](11)
	//
	tampered, err := linreg.NewAir(a.Context().TraceInfo(), inputs)
	require.NoError(t, err)
	//
	verdict := Verify(proof, tampered, acceptable())
	require.Error(t, verdict)
	require.IsType(t, &VerificationError{}, verdict)
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	//
	proof.Commitment[0] ^= 1
	//
	verdict := Verify(proof, a, acceptable())
	require.Error(t, verdict)
	require.IsType(t, &VerificationError{}, verdict)
}

func TestVerifyRejectsInsufficientSecurity(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	// Default options conjecture 96 bits.
	verdict := Verify(proof, a, AcceptableOptions{MinConjecturedSecurity: 128})
	require.Error(t, verdict)
	require.IsType(t, &VerificationError{}, verdict)
}

func TestVerifyRejectsWrongShape(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	// AIR for a longer trace than the proof commits to.
	info, err := air.NewTraceInfo(linreg.TraceWidth, 16)
	require.NoError(t, err)
	//
	longer, err := linreg.NewAir(info, a.PublicInputs())
	require.NoError(t, err)
	//
	verdict := Verify(proof, longer, acceptable())
	require.Error(t, verdict)
	require.IsType(t, &VerificationError{}, verdict)
}

func TestProofCodecRoundTrip(t *testing.T) {
	tr, a := fixture[gf8209.Element](t)
	//
	proof, err := Prove(a, tr, DefaultProofOptions())
	require.NoError(t, err)
	//
	data, err := proof.MarshalBinary()
	require.NoError(t, err)
	//
	var decoded Proof
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.NoError(t, Verify(&decoded, a, acceptable()))
}

func TestProofOptions(t *testing.T) {
	require.NoError(t, DefaultProofOptions().Validate())
	require.Equal(t, uint(96), DefaultProofOptions().ConjecturedSecurity())
	// Grinding adds bits; the estimate saturates at 128.
	opts := ProofOptions{NumQueries: 32, BlowupFactor: 8, GrindingFactor: 16}
	require.Equal(t, uint(112), opts.ConjecturedSecurity())
	opts.NumQueries = 64
	require.Equal(t, uint(128), opts.ConjecturedSecurity())
	// Invalid options
	require.Error(t, ProofOptions{NumQueries: 0, BlowupFactor: 8}.Validate())
	require.Error(t, ProofOptions{NumQueries: 32, BlowupFactor: 3}.Validate())
	require.Error(t, ProofOptions{NumQueries: 32, BlowupFactor: 1}.Validate())
}

func TestZeroSampleRoundTrip(t *testing.T) {
	// Prediction occupies row 0; proof still round-trips.
	tr, err := linreg.BuildTrace(
		field.Uint64[gf8209.Element](3), field.Uint64[gf8209.Element](7),
		nil, nil, field.Uint64[gf8209.Element](6))
	require.NoError(t, err)
	//
	info, err := air.TraceInfoOf[gf8209.Element](tr)
	require.NoError(t, err)
	//
	a, err := linreg.NewAir(info, linreg.PublicInputs[gf8209.Element]{
		XValue:     field.Uint64[gf8209.Element](6),
		PredictedY: field.Uint64[gf8209.Element](25),
	})
	require.NoError(t, err)
	//
	proof, err := Prove[gf8209.Element](a, tr, DefaultProofOptions())
	require.NoError(t, err)
	require.NoError(t, Verify[gf8209.Element](proof, a, acceptable()))
}
