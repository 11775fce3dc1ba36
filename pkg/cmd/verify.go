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

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [flags] proof_file public_inputs_file",
	Short: "Verify a proof against a public input record.",
	Long: `Check that a proof attests the claimed prediction for the public input
record, under the linear model constraint system.  The secret model
parameters play no part in verification.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		bytes, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		var proof prover.Proof
		if err := proof.UnmarshalBinary(bytes); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		inputs, err := ReadPublicInputsFile(args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Reconstruct the AIR from the proof's declared shape and the public
		// input record; the trace itself is never seen here.
		info, err := air.NewTraceInfo(linreg.TraceWidth, uint(proof.TraceLength))
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
		acceptable := prover.AcceptableOptions{
			MinConjecturedSecurity: GetUint(cmd, "min-security"),
		}
		//
		if err := prover.Verify[bls12_377.Element](&proof, a, acceptable); err != nil {
			fmt.Printf("verification failed: %s\n", err)
			os.Exit(3)
		}
		//
		fmt.Printf("Verified: y = %s for x = %s\n",
			inputs.PredictedY.String(), inputs.XValue.String())
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Uint("min-security", 95, "minimum acceptable conjectured security (bits)")
}
