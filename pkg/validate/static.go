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
	"github.com/iqm-finland/sdk/pkg/quantum"
)

// CheckStatic validates the architecture-independent structure of a circuit:
// it must be named and non-empty, every instruction must use a known
// operation with the right locus arity, and operation arguments must be
// present and well typed.  These checks require no architecture snapshot and
// run before the dynamic ones.
func CheckStatic(circuit *quantum.Circuit) *Failure {
	if circuit.Name == "" {
		return failuref(ReasonInvalidCircuit, "circuit has no name")
	}
	//
	if len(circuit.Instructions) == 0 {
		return failuref(ReasonInvalidCircuit, "circuit '%s' has no instructions", circuit.Name)
	}
	//
	for i := range circuit.Instructions {
		if failure := checkStaticInstruction(&circuit.Instructions[i]); failure != nil {
			failure.CircuitName = circuit.Name
			return failure
		}
	}
	//
	return nil
}

func checkStaticInstruction(instr *quantum.Instruction) *Failure {
	info, ok := quantum.Operation(instr.Name)
	if !ok {
		return instructionFailure(failuref(ReasonUnknownOperation,
			"unknown quantum operation '%s'", instr.Name), instr, nil)
	}
	// Check locus arity.
	if len(instr.Qubits) == 0 {
		return instructionFailure(failuref(ReasonInvalidArity,
			"operation '%s' requires a non-empty locus", instr.Name), instr, nil)
	}
	//
	if info.Arity != quantum.AnyArity && len(instr.Qubits) != info.Arity {
		return instructionFailure(failuref(ReasonInvalidArity,
			"operation '%s' acts on %d component(s), but its locus has %d",
			instr.Name, info.Arity, len(instr.Qubits)), instr, nil)
	}
	// Check all required arguments are present and well typed.
	for name, kind := range info.Args {
		value, ok := instr.Args[name]
		if !ok {
			return instructionFailure(failuref(ReasonInvalidArgument,
				"operation '%s' requires argument '%s'", instr.Name, name), instr, nil)
		}
		//
		if !argKindMatches(kind, value) {
			return instructionFailure(failuref(ReasonInvalidArgument,
				"argument '%s' of operation '%s' has the wrong type", name, instr.Name), instr, nil)
		}
	}
	// Check no unexpected arguments were given.
	for name := range instr.Args {
		if _, ok := info.Args[name]; !ok {
			return instructionFailure(failuref(ReasonInvalidArgument,
				"operation '%s' does not accept argument '%s'", instr.Name, name), instr, nil)
		}
	}
	//
	return nil
}

func argKindMatches(kind quantum.ArgKind, value any) bool {
	switch kind {
	case quantum.ArgString:
		_, ok := value.(string)
		return ok
	case quantum.ArgFloat:
		// JSON decoding yields float64, but accept programmatic ints too.
		switch value.(type) {
		case float64, float32, int, int64:
			return true
		}
	}
	//
	return false
}
