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

// Package validate decides whether a batch of quantum circuits is executable
// on a given dynamic quantum architecture snapshot.  It is purely
// computational: it performs no I/O, holds no state between calls, and never
// mutates its inputs, hence any number of validation calls may run
// concurrently (even against the same snapshot).
package validate

import (
	"github.com/iqm-finland/sdk/pkg/quantum"
)

// Options control how a circuit batch is validated.  The zero value is not
// useful; start from DefaultOptions.
type Options struct {
	// QubitMapping optionally translates the logical qubit names used in
	// the circuits into physical component names.  It applies uniformly to
	// every circuit of the batch.  Nil means the circuits already use
	// physical names.
	QubitMapping quantum.QubitMapping
	// MoveValidation selects how move sandwiches are validated.
	MoveValidation MoveMode
	// CloseSandwiches, when true, makes a circuit ending with an open
	// move sandwich a failure.  Callers assembling a partial circuit
	// (e.g. while constructing a compilation request) may disable it.
	CloseSandwiches bool
}

// DefaultOptions returns the options used for final executable circuits:
// strict move validation with mandatory sandwich closure.
func DefaultOptions() Options {
	return Options{
		MoveValidation:  MoveStrict,
		CloseSandwiches: true,
	}
}

// CircuitBatch validates a batch of circuits against an architecture
// snapshot, stopping at the first violation found.  The returned error, if
// any, is a *Failure identifying the failing circuit.  Checks run in a fixed
// order: static structure for every circuit, then the qubit mapping once for
// the whole batch, then per circuit every instruction, then the measurement
// keys, and finally the move sandwiches.
func CircuitBatch(arch *quantum.Architecture, circuits []quantum.Circuit, opts Options) error {
	if opts.MoveValidation == "" {
		opts.MoveValidation = MoveStrict
	}
	// Architecture-independent structure first.
	for i := range circuits {
		if failure := CheckStatic(&circuits[i]); failure != nil {
			return atCircuit(failure, i, circuits[i].Name)
		}
	}
	// The qubit mapping applies to the batch as a whole.
	if failure := CheckQubitMapping(arch, circuits, opts.QubitMapping); failure != nil {
		return failure
	}
	//
	for i := range circuits {
		var (
			circuit = &circuits[i]
			keys    = make(map[string]bool)
		)
		//
		for j := range circuit.Instructions {
			instr := &circuit.Instructions[j]
			//
			if failure := CheckInstruction(arch, instr, opts.QubitMapping); failure != nil {
				return atCircuit(failure, i, circuit.Name)
			}
		}
		// Measurement result labels must be unique within one circuit
		// (reuse across circuits is fine).
		for j := range circuit.Instructions {
			instr := &circuit.Instructions[j]
			//
			if info, ok := quantum.Operation(instr.Name); ok && info.Role == quantum.RoleMeasurement {
				key, _ := instr.Args["key"].(string)
				//
				if keys[key] {
					failure := instructionFailure(failuref(ReasonDuplicateMeasurementKey,
						"%s has a non-unique measurement key '%s'", instr, key), instr, opts.QubitMapping)
					//
					return atCircuit(failure, i, circuit.Name)
				}
				//
				keys[key] = true
			}
		}
		// Move sandwiches are checked over the whole instruction
		// sequence, with fresh occupancy state per circuit.
		failure := CheckMoves(arch, circuit, opts.QubitMapping, opts.MoveValidation, opts.CloseSandwiches)
		if failure != nil {
			return atCircuit(failure, i, circuit.Name)
		}
	}
	//
	return nil
}

// atCircuit attributes a failure to a circuit of the batch, unless it already
// names one.
func atCircuit(failure *Failure, index int, name string) *Failure {
	if failure.CircuitIndex < 0 {
		failure.CircuitIndex = index
		failure.CircuitName = name
	}
	//
	return failure
}
