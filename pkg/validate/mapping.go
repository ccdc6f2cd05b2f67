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
package validate

import (
	"slices"
	"strings"

	"github.com/iqm-finland/sdk/pkg/quantum"
)

// CheckQubitMapping validates an optional logical-to-physical qubit mapping
// against an architecture and a circuit batch.  The mapping must be injective,
// must cover every qubit referenced anywhere in the batch, and must only name
// physical targets which exist on the architecture.  A nil mapping means the
// circuits already use physical names, and passes trivially.
func CheckQubitMapping(arch *quantum.Architecture, circuits []quantum.Circuit,
	mapping quantum.QubitMapping) *Failure {
	if mapping == nil {
		return nil
	}
	//
	var (
		logicals = make([]string, 0, len(mapping))
		targets  = make(map[string]string, len(mapping))
	)
	// Iterate logical names in sorted order, for deterministic diagnostics.
	for logical := range mapping {
		logicals = append(logicals, logical)
	}
	//
	slices.Sort(logicals)
	// Check the mapping is injective.
	for _, logical := range logicals {
		physical := mapping[logical]
		//
		if prev, ok := targets[physical]; ok {
			return failuref(ReasonNonInjectiveMapping,
				"logical qubits %s and %s both map to physical component %s", prev, logical, physical)
		}
		//
		targets[physical] = logical
	}
	// Check the mapping covers all qubits used in the batch.
	for i, circuit := range circuits {
		var missing []string
		//
		for q := range circuit.AllQubits() {
			if _, ok := mapping[q]; !ok {
				missing = append(missing, q)
			}
		}
		//
		if len(missing) > 0 {
			slices.Sort(missing)
			//
			failure := failuref(ReasonUnmappedQubits,
				"qubits {%s} are not found in the provided qubit mapping", strings.Join(missing, ", "))
			failure.CircuitIndex = i
			failure.CircuitName = circuit.Name
			//
			return failure
		}
	}
	// Check every mapped target exists on the architecture.
	for _, logical := range logicals {
		if physical := mapping[logical]; !arch.HasComponent(physical) {
			return failuref(ReasonUnmappedTargetMissing,
				"component %s (mapped from %s) is not present in the architecture", physical, logical)
		}
	}
	//
	return nil
}
