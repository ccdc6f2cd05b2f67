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
	"fmt"

	"github.com/iqm-finland/sdk/pkg/quantum"
)

// CheckInstruction validates a single instruction against an architecture
// snapshot, checking that its operation and (optionally) implementation are
// calibrated and that its locus, after qubit-mapping translation, is allowed.
func CheckInstruction(arch *quantum.Architecture, instr *quantum.Instruction,
	mapping quantum.QubitMapping) *Failure {
	// Resolve against the static operation table.
	opInfo, ok := quantum.Operation(instr.Name)
	if !ok {
		return instructionFailure(failuref(ReasonUnknownOperation,
			"unknown quantum operation '%s'", instr.Name), instr, mapping)
	}
	//
	var (
		opName = quantum.CanonicalOperationName(instr.Name)
		mapped = mapping.Apply(instr.Qubits)
	)
	// Operations needing no calibration are allowed on every component.
	if opInfo.NoCalibrationNeeded {
		return checkLocusComponents(instr, mapping,
			toSet(arch.Components()), "does not exist on the QPU")
	}
	// Everything else must be calibrated on this architecture.
	gate, ok := arch.Gate(opName)
	if !ok {
		return instructionFailure(failuref(ReasonUnsupportedOperation,
			"operation '%s' is not supported by the architecture", opName), instr, mapping)
	}
	// Determine the allowed loci, and the name used in diagnostics.
	var (
		allowedLoci []quantum.Locus
		displayName = opName
	)
	//
	if instr.Implementation != "" {
		// Specific implementation requested.
		implInfo, ok := gate.Implementations[instr.Implementation]
		if !ok {
			return instructionFailure(failuref(ReasonUnsupportedImplementation,
				"operation '%s' implementation '%s' is not supported by the architecture",
				opName, instr.Implementation), instr, mapping)
		}
		//
		allowedLoci = implInfo.Loci
		displayName = fmt.Sprintf("%s.%s", opName, instr.Implementation)
	} else {
		// Any implementation is fine.
		allowedLoci = gate.Loci()
	}
	//
	if opInfo.Factorizable {
		// Locus components are checked independently of each other.
		components := make(map[string]bool)
		//
		for _, locus := range allowedLoci {
			for _, c := range locus {
				components[c] = true
			}
		}
		//
		return checkLocusComponents(instr, mapping, components,
			fmt.Sprintf("is not allowed as locus for '%s'", displayName))
	}
	// Locus must match one of the allowed loci, either exactly or up to
	// permutation for symmetric operations.
	for _, locus := range allowedLoci {
		if mapped.Equals(locus) || (opInfo.Symmetric && mapped.Permutes(locus)) {
			return nil
		}
	}
	//
	var failure *Failure
	//
	if mapping != nil {
		failure = failuref(ReasonLocusNotAllowed,
			"%s = %s is not allowed as locus for '%s'", instr.Qubits, mapped, displayName)
	} else {
		failure = failuref(ReasonLocusNotAllowed,
			"%s is not allowed as locus for '%s'", instr.Qubits, displayName)
	}
	//
	return instructionFailure(failure, instr, mapping)
}

// checkLocusComponents verifies that every component of the instruction's
// (mapped) locus belongs to the given allowed set.
func checkLocusComponents(instr *quantum.Instruction, mapping quantum.QubitMapping,
	allowed map[string]bool, msg string) *Failure {
	mapped := mapping.Apply(instr.Qubits)
	//
	for i, q := range instr.Qubits {
		if allowed[mapped[i]] {
			continue
		}
		//
		var failure *Failure
		//
		if mapping != nil {
			failure = failuref(ReasonLocusNotAllowed, "component %s = %s %s", q, mapped[i], msg)
		} else {
			failure = failuref(ReasonLocusNotAllowed, "component %s %s", q, msg)
		}
		//
		return instructionFailure(failure, instr, mapping)
	}
	//
	return nil
}

// instructionFailure attaches instruction context (and the mapped locus, when
// a mapping exists) to a failure.
func instructionFailure(failure *Failure, instr *quantum.Instruction, mapping quantum.QubitMapping) *Failure {
	failure.Instruction = instr
	failure.Locus = instr.Qubits
	failure.Operation = quantum.CanonicalOperationName(instr.Name)
	failure.Implementation = instr.Implementation
	//
	if mapping != nil {
		failure.MappedLocus = mapping.Apply(instr.Qubits)
	}
	//
	return failure
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	//
	for _, n := range names {
		set[n] = true
	}
	//
	return set
}
