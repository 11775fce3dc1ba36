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
package cmd

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/consensys/go-linreg/pkg/linreg"
	"github.com/consensys/go-linreg/pkg/util/field"
	"github.com/consensys/go-linreg/pkg/util/field/bls12_377"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string flag, or panics if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected uint flag, or panics if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// jsonModelFile is the on-disk form of a prover-side model instance: the
// secret parameters alongside the public data.  Values are decimal, or hex
// with an 0x prefix.
type jsonModelFile struct {
	Slope     string   `json:"slope"`
	Intercept string   `json:"intercept"`
	SampleXs  []string `json:"sample_x"`
	SampleYs  []string `json:"sample_y"`
	TargetX   string   `json:"target_x"`
}

// jsonPublicInputs is the on-disk form of a public input record.
type jsonPublicInputs struct {
	XValue     string   `json:"x_value"`
	PredictedY string   `json:"predicted_y"`
	SampleXs   []string `json:"sample_x"`
	SampleYs   []string `json:"sample_y"`
}

// ReadModelFile parses a JSON model file (secret parameters plus public
// data).
func ReadModelFile(filename string) (slope, intercept bls12_377.Element,
	sampleXs, sampleYs []bls12_377.Element, targetX bls12_377.Element, err error) {
	//
	var (
		bytes []byte
		model jsonModelFile
	)
	//
	if bytes, err = os.ReadFile(filename); err != nil {
		return
	} else if err = json.Unmarshal(bytes, &model); err != nil {
		return
	}
	//
	if slope, err = parseElement(model.Slope); err != nil {
		return
	} else if intercept, err = parseElement(model.Intercept); err != nil {
		return
	} else if sampleXs, err = parseElements(model.SampleXs); err != nil {
		return
	} else if sampleYs, err = parseElements(model.SampleYs); err != nil {
		return
	}
	//
	targetX, err = parseElement(model.TargetX)
	//
	return
}

// ReadPublicInputsFile parses a JSON public input record.
func ReadPublicInputsFile(filename string) (linreg.PublicInputs[bls12_377.Element], error) {
	var (
		inputs linreg.PublicInputs[bls12_377.Element]
		parsed jsonPublicInputs
	)
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return inputs, err
	} else if err = json.Unmarshal(bytes, &parsed); err != nil {
		return inputs, err
	}
	//
	if inputs.XValue, err = parseElement(parsed.XValue); err != nil {
		return inputs, err
	} else if inputs.PredictedY, err = parseElement(parsed.PredictedY); err != nil {
		return inputs, err
	} else if inputs.SampleXs, err = parseElements(parsed.SampleXs); err != nil {
		return inputs, err
	}
	//
	inputs.SampleYs, err = parseElements(parsed.SampleYs)
	//
	return inputs, err
}

// WritePublicInputsFile writes a public input record in its JSON form.
func WritePublicInputsFile(filename string, inputs linreg.PublicInputs[bls12_377.Element]) error {
	record := jsonPublicInputs{
		XValue:     inputs.XValue.String(),
		PredictedY: inputs.PredictedY.String(),
		SampleXs:   formatElements(inputs.SampleXs),
		SampleYs:   formatElements(inputs.SampleYs),
	}
	//
	bytes, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0644)
}

func parseElement(str string) (bls12_377.Element, error) {
	var (
		val big.Int
		ok  bool
	)
	//
	if strings.HasPrefix(str, "0x") {
		_, ok = val.SetString(str[2:], 16)
	} else {
		_, ok = val.SetString(str, 10)
	}
	//
	if !ok || val.Sign() < 0 {
		return bls12_377.Element{}, fmt.Errorf("invalid field element \"%s\"", str)
	}
	//
	return field.BigInt[bls12_377.Element](val), nil
}

func parseElements(strs []string) ([]bls12_377.Element, error) {
	elements := make([]bls12_377.Element, len(strs))
	//
	for i, s := range strs {
		var err error
		//
		if elements[i], err = parseElement(s); err != nil {
			return nil, err
		}
	}
	//
	return elements, nil
}

func formatElements(elements []bls12_377.Element) []string {
	strs := make([]string, len(elements))
	//
	for i, e := range elements {
		strs[i] = e.String()
	}
	//
	return strs
}
