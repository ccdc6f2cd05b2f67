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

	"github.com/BurntSushi/toml"
	"github.com/iqm-finland/sdk/pkg/quantum"
	qjson "github.com/iqm-finland/sdk/pkg/quantum/json"
	log "github.com/sirupsen/logrus"
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

// Parse an architecture snapshot file (JSON).
func readArchitectureFile(filename string) *quantum.Architecture {
	log.Debug(fmt.Sprintf("reading architecture snapshot %s", filename))
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var arch *quantum.Architecture
		//
		if arch, err = qjson.ArchitectureFromBytes(bytes); err == nil {
			return arch
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse a circuit batch file (JSON).
func readCircuitsFile(filename string) []quantum.Circuit {
	log.Debug(fmt.Sprintf("reading circuit batch %s", filename))
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var circuits []quantum.Circuit
		//
		if circuits, err = qjson.CircuitsFromBytes(bytes); err == nil {
			return circuits
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Parse a qubit mapping file (JSON object of logical to physical names).
func readMappingFile(filename string) quantum.QubitMapping {
	log.Debug(fmt.Sprintf("reading qubit mapping %s", filename))
	//
	bytes, err := os.ReadFile(filename)
	if err == nil {
		var mapping quantum.QubitMapping
		//
		if mapping, err = qjson.MappingFromBytes(bytes); err == nil {
			return mapping
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// validationOptionsFile mirrors the TOML options file accepted by the
// validate command.
type validationOptionsFile struct {
	MoveValidation  string `toml:"move_validation"`
	CloseSandwiches *bool  `toml:"close_sandwiches"`
}

// Parse a validation options file (TOML).
func readOptionsFile(filename string) validationOptionsFile {
	log.Debug(fmt.Sprintf("reading validation options %s", filename))
	//
	var options validationOptionsFile
	//
	if _, err := toml.DecodeFile(filename, &options); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return options
}
