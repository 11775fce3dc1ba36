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
	"fmt"
	"os"

	"github.com/consensys/go-linreg/pkg/air"
	"github.com/consensys/go-linreg/pkg/linreg"
	"github.com/consensys/go-linreg/pkg/prover"
	"github.com/consensys/go-linreg/pkg/util/field/bls12_377"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove [flags] model_file",
	Short: "Prove a prediction of a private linear model.",
	Long: `Build an execution trace from the given model file (secret slope and
intercept, public sample points and target x), prove it satisfies the
linear model constraints, and write out the proof along with the public
input record a verifier needs.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		options := prover.ProofOptions{
			NumQueries:     GetUint(cmd, "queries"),
			BlowupFactor:   GetUint(cmd, "blowup"),
			GrindingFactor: GetUint(cmd, "grinding"),
		}
		//
		slope, intercept, sampleXs, sampleYs, targetX, err := ReadModelFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Build the execution trace
		tr, err := linreg.BuildTrace(slope, intercept, sampleXs, sampleYs, targetX)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		log.Debugf("built %dx%d trace", tr.Width(), tr.Height())
		// The authoritative record is constructed here, alongside the trace,
		// rather than inferred from it afterwards.
		inputs := linreg.PublicInputs[bls12_377.Element]{
			XValue:     targetX,
			PredictedY: slope.Mul(targetX).Add(intercept),
			SampleXs:   sampleXs,
			SampleYs:   sampleYs,
		}
		//
		info, err := air.TraceInfoOf[bls12_377.Element](tr)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		a, err := linreg.NewAir(info, inputs)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		proof, err := prover.Prove[bls12_377.Element](a, tr, options)
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		bytes, err := proof.MarshalBinary()
		if err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		//
		proofFile := GetString(cmd, "output")
		if err := os.WriteFile(proofFile, bytes, 0644); err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		//
		inputsFile := GetString(cmd, "public-inputs")
		if err := WritePublicInputsFile(inputsFile, inputs); err != nil {
			fmt.Println(err)
			os.Exit(4)
		}
		//
		fmt.Printf("Wrote %d byte proof to %s (public inputs in %s)\n",
			len(bytes), proofFile, inputsFile)
		fmt.Printf("Claim: y = %s for x = %s\n", inputs.PredictedY.String(), targetX.String())
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().StringP("output", "o", "model.proof", "write proof to this file")
	proveCmd.Flags().String("public-inputs", "public_inputs.json", "write public input record to this file")
	proveCmd.Flags().Uint("queries", 32, "number of queries for security accounting")
	proveCmd.Flags().Uint("blowup", 8, "blowup factor (power of two)")
	proveCmd.Flags().Uint("grinding", 0, "grinding factor in bits")
}
