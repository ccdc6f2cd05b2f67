// Copyright IQM Finland Oy.
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

	"github.com/iqm-finland/sdk/pkg/validate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [flags] architecture_file circuit_file",
	Short: "Check a circuit batch against an architecture snapshot.",
	Long: `Check that every circuit in a given batch is executable on a given dynamic
	quantum architecture snapshot.  Both files are given in JSON notation; validation
	options can be given as flags or as a TOML options file.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		options := validate.DefaultOptions()
		// An options file provides the baseline, with explicit flags
		// overriding it.
		if filename := GetString(cmd, "options"); filename != "" {
			fileOptions := readOptionsFile(filename)
			//
			if fileOptions.MoveValidation != "" {
				options.MoveValidation = validate.MoveMode(fileOptions.MoveValidation)
			}
			//
			if fileOptions.CloseSandwiches != nil {
				options.CloseSandwiches = *fileOptions.CloseSandwiches
			}
		}
		//
		if cmd.Flags().Changed("move-validation") {
			options.MoveValidation = validate.MoveMode(GetString(cmd, "move-validation"))
		}
		//
		if GetFlag(cmd, "allow-open-sandwiches") {
			options.CloseSandwiches = false
		}
		//
		switch options.MoveValidation {
		case validate.MoveDisabled, validate.MoveStrict, validate.MoveRelaxed:
			// ok
		default:
			fmt.Printf("unknown move validation mode %q\n", options.MoveValidation)
			os.Exit(2)
		}
		//
		if filename := GetString(cmd, "mapping"); filename != "" {
			options.QubitMapping = readMappingFile(filename)
		}
		// Parse architecture snapshot
		arch := readArchitectureFile(args[0])
		// Parse circuit batch
		circuits := readCircuitsFile(args[1])
		//
		log.Debug(fmt.Sprintf("validating %d circuit(s) against calibration set %s",
			len(circuits), arch.CalibrationSetID()))
		// Go!
		if err := validate.CircuitBatch(arch, circuits, options); err != nil {
			reportFailure(err)
			os.Exit(1)
		}
		//
		fmt.Printf("validated %d circuit(s) against calibration set %s\n",
			len(circuits), arch.CalibrationSetID())
	},
}

// reportFailure prints a validation failure, including its reason code so
// that scripts can match on it.
func reportFailure(err error) {
	if failure, ok := validate.AsFailure(err); ok {
		fmt.Printf("%s [%s]\n", failure.Error(), failure.Reason)
	} else {
		fmt.Println(err)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringP("mapping", "m", "", "qubit mapping file (JSON)")
	validateCmd.Flags().StringP("options", "o", "", "validation options file (TOML)")
	validateCmd.Flags().String("move-validation", string(validate.MoveStrict),
		"move validation mode (disabled/strict/relaxed)")
	validateCmd.Flags().Bool("allow-open-sandwiches", false,
		"permit circuits ending with an open move sandwich")
}
