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
package linreg

import (
	"testing"

	"github.com/consensys/go-linreg/pkg/util/field"
	"github.com/consensys/go-linreg/pkg/util/field/gf8209"
	"github.com/stretchr/testify/require"
)

func TestInferenceAtCap(t *testing.T) {
	// With exactly maxInferredSamples samples, inference recovers the record
	// exactly.
	for _, s := range []scenario{scenario1, scenario2} {
		require.Equal(t, uint(maxInferredSamples), uint(len(s.sampleXs)))
		//
		tr := buildScenario[gf8209.Element](t, s)
		inferred := InferPublicInputs[gf8209.Element](tr)
		//
		require.NoError(t, CheckInference(inferred, s.inputs()))
	}
}

func TestInferenceBelowCap(t *testing.T) {
	// With fewer samples than the cap, inference misclassifies the prediction
	// row as a further sample and falls back on the trace's final row.  The
	// resulting record is structurally wrong, which CheckInference reports.
	s := scenario1
	s.sampleXs = s.sampleXs[:3]
	s.sampleYs = s.sampleYs[:3]
	//
	tr := buildScenario[gf8209.Element](t, s)
	inferred := InferPublicInputs[gf8209.Element](tr)
	//
	err := CheckInference(inferred, s.inputs())
	require.Error(t, err)
	require.IsType(t, &InferenceMismatchError{}, err)
	// The prediction row was swallowed into the samples.
	require.Equal(t, 4, len(inferred.SampleXs))
}

func TestInferenceZeroSamples(t *testing.T) {
	tr, err := BuildTrace(
		field.Uint64[gf8209.Element](3), field.Uint64[gf8209.Element](7),
		nil, nil, field.Uint64[gf8209.Element](6))
	require.NoError(t, err)
	//
	inferred := InferPublicInputs[gf8209.Element](tr)
	// The prediction row itself is misread as a sample.
	authoritative := PublicInputs[gf8209.Element]{
		XValue:     field.Uint64[gf8209.Element](6),
		PredictedY: field.Uint64[gf8209.Element](25),
	}
	//
	mismatch := CheckInference(inferred, authoritative)
	require.Error(t, mismatch)
	require.Equal(t, "sample_x_values", mismatch.(*InferenceMismatchError).Field)
}

func TestCheckInferenceAgreement(t *testing.T) {
	require.NoError(t, CheckInference(scenario1.inputs(), scenario1.inputs()))
	//
	err := CheckInference(scenario1.inputs(), scenario2.inputs())
	require.Error(t, err)
}
