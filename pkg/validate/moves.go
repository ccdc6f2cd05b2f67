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
	"slices"
	"strings"

	"github.com/iqm-finland/sdk/pkg/quantum"
)

// MoveMode selects how move-gate sandwiches are validated.
type MoveMode string

const (
	// MoveDisabled bypasses move validation entirely.
	MoveDisabled MoveMode = "disabled"
	// MoveStrict allows only barriers to act on a qubit whose state is
	// parked in a resonator.
	MoveStrict MoveMode = "strict"
	// MoveRelaxed additionally allows single-qubit rotations inside a
	// sandwich.
	MoveRelaxed MoveMode = "relaxed"
)

// CheckMoves validates the move gates of one circuit against an architecture.
// A move transfers a qubit state into a resonator (opening a sandwich) or
// back out of it (closing the sandwich).  While a sandwich is open, only
// operations on the mode's allow-list may act on the parked qubit, and every
// sandwich must be closed before the circuit ends unless closeSandwiches is
// false.
func CheckMoves(arch *quantum.Architecture, circuit *quantum.Circuit,
	mapping quantum.QubitMapping, mode MoveMode, closeSandwiches bool) *Failure {
	if mode == MoveDisabled {
		return nil
	}
	// Check whether this architecture has any move-capable gate at all.
	if !moveCapable(arch) {
		for i := range circuit.Instructions {
			instr := &circuit.Instructions[i]
			//
			if info, ok := quantum.Operation(instr.Name); ok && info.Role == quantum.RoleMove {
				return instructionFailure(failuref(ReasonMoveUnsupported,
					"move instruction is not supported by the architecture"), instr, mapping)
			}
		}
		//
		return nil
	}
	var (
		// Maps each resonator to the qubit whose state it currently
		// holds.  Resonators absent from the map hold no qubit state.
		occupations = make(map[string]string)
		// Qubits whose states are currently parked in some resonator.
		moved = make(map[string]bool)
	)
	//
	for i := range circuit.Instructions {
		var (
			instr    = &circuit.Instructions[i]
			mapped   = mapping.Apply(instr.Qubits)
			info, ok = quantum.Operation(instr.Name)
		)
		//
		if ok && info.Role == quantum.RoleMove {
			if failure := applyMove(arch, instr, mapped, mapping, occupations, moved); failure != nil {
				return failure
			}
		} else if len(moved) > 0 && !allowedInSandwich(info, ok, mode) {
			// Check the instruction does not act on a parked qubit.
			var overlap []string
			//
			for _, q := range mapped {
				if moved[q] {
					overlap = append(overlap, q)
				}
			}
			//
			if len(overlap) > 0 {
				slices.Sort(overlap)
				//
				return instructionFailure(failuref(ReasonMoveQubitInUse,
					"instruction %s acts on %s while the state(s) of {%s} are in a resonator (%s)",
					instr.Name, mapped, strings.Join(overlap, ", "),
					formatOccupations(occupations)), instr, mapping)
			}
		}
	}
	// Every sandwich must have been closed before the circuit ends.
	if closeSandwiches && len(occupations) > 0 {
		failure := failuref(ReasonMoveUnclosedSandwich,
			"circuit ends while qubit state(s) are still in a resonator (%s)",
			formatOccupations(occupations))
		failure.CircuitName = circuit.Name
		//
		return failure
	}
	//
	return nil
}

// applyMove advances the occupancy state by one move instruction, failing if
// the move is malformed or violates the pairing invariants.
func applyMove(arch *quantum.Architecture, instr *quantum.Instruction, mapped quantum.Locus,
	mapping quantum.QubitMapping, occupations map[string]string, moved map[string]bool) *Failure {
	if len(mapped) != 2 {
		return instructionFailure(failuref(ReasonMoveInvalidLocus,
			"move instructions require a (qubit, resonator) locus, not %s", mapped), instr, mapping)
	}
	//
	qubit, resonator := mapped[0], mapped[1]
	// Positionally, the first component must be a qubit and the second a
	// computational resonator.
	if !arch.IsQubit(qubit) || !arch.IsResonator(resonator) {
		return instructionFailure(failuref(ReasonMoveInvalidLocus,
			"move instructions are only allowed between a qubit and a resonator, not %s", mapped),
			instr, mapping)
	}
	//
	if occupant, occupied := occupations[resonator]; !occupied {
		// Opening move: the qubit state must not already be parked in
		// another resonator, as a qubit state cannot be split.
		if moved[qubit] {
			return instructionFailure(failuref(ReasonMoveSplitState,
				"move %s: state of %s is already in another resonator (%s)",
				mapped, qubit, formatOccupations(occupations)), instr, mapping)
		}
		//
		occupations[resonator] = qubit
		moved[qubit] = true
	} else {
		// Closing move: the qubit must match the one parked in the
		// resonator.
		if occupant != qubit {
			return instructionFailure(failuref(ReasonMoveMismatchedClose,
				"move %s into an already occupied resonator (%s)",
				mapped, formatOccupations(occupations)), instr, mapping)
		}
		//
		delete(occupations, resonator)
		delete(moved, qubit)
	}
	//
	return nil
}

// allowedInSandwich decides whether an operation may act on a parked qubit,
// keyed on the operation's role rather than its name.
func allowedInSandwich(info quantum.OperationInfo, known bool, mode MoveMode) bool {
	if !known {
		return false
	}
	//
	switch info.Role {
	case quantum.RoleBarrier:
		return true
	case quantum.RoleRotation:
		return mode == MoveRelaxed
	default:
		return false
	}
}

// moveCapable checks whether any calibrated gate of the architecture has the
// move role.
func moveCapable(arch *quantum.Architecture) bool {
	for _, name := range arch.GateNames() {
		if info, ok := quantum.Operation(name); ok && info.Role == quantum.RoleMove {
			return true
		}
	}
	//
	return false
}

// formatOccupations renders a resonator occupancy map deterministically,
// e.g. "CR1=QB2, CR2=QB3".
func formatOccupations(occupations map[string]string) string {
	var (
		resonators = make([]string, 0, len(occupations))
		parts      = make([]string, 0, len(occupations))
	)
	//
	for r := range occupations {
		resonators = append(resonators, r)
	}
	//
	slices.Sort(resonators)
	//
	for _, r := range resonators {
		parts = append(parts, fmt.Sprintf("%s=%s", r, occupations[r]))
	}
	//
	return strings.Join(parts, ", ")
}
