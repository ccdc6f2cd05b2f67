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
	"errors"
	"fmt"

	"github.com/iqm-finland/sdk/pkg/quantum"
)

// Reason identifies the class of a validation failure.  Callers and tests
// should match on reasons rather than message text.
type Reason string

// Reasons for rejecting a circuit batch.
const (
	// ReasonInvalidCircuit indicates a structurally broken circuit, e.g.
	// one without a name or without instructions.
	ReasonInvalidCircuit Reason = "invalid-circuit"
	// ReasonInvalidArity indicates a locus whose length does not match the
	// operation's arity.
	ReasonInvalidArity Reason = "invalid-arity"
	// ReasonInvalidArgument indicates a missing or ill-typed operation
	// argument.
	ReasonInvalidArgument Reason = "invalid-argument"
	// ReasonUnknownOperation indicates an operation name absent from the
	// static operation table.
	ReasonUnknownOperation Reason = "unknown-operation"
	// ReasonUnsupportedOperation indicates an operation not calibrated on
	// the given architecture.
	ReasonUnsupportedOperation Reason = "unsupported-operation"
	// ReasonUnsupportedImplementation indicates a requested implementation
	// not calibrated on the given architecture.
	ReasonUnsupportedImplementation Reason = "unsupported-implementation"
	// ReasonLocusNotAllowed indicates a locus rejected by the exact,
	// symmetric or factorizable matching rules.
	ReasonLocusNotAllowed Reason = "locus-not-allowed"
	// ReasonNonInjectiveMapping indicates two logical qubits mapped to the
	// same physical component.
	ReasonNonInjectiveMapping Reason = "non-injective-mapping"
	// ReasonUnmappedQubits indicates circuit qubits missing from the
	// supplied qubit mapping.
	ReasonUnmappedQubits Reason = "unmapped-qubits"
	// ReasonUnmappedTargetMissing indicates a mapping target absent from
	// the architecture.
	ReasonUnmappedTargetMissing Reason = "unmapped-target-missing"
	// ReasonDuplicateMeasurementKey indicates a measurement result label
	// used twice within one circuit.
	ReasonDuplicateMeasurementKey Reason = "duplicate-measurement-key"
	// ReasonMoveInvalidLocus indicates a move whose locus is not a
	// (qubit, resonator) pair.
	ReasonMoveInvalidLocus Reason = "move-invalid-locus"
	// ReasonMoveSplitState indicates a move of a qubit whose state is
	// already parked in another resonator.
	ReasonMoveSplitState Reason = "move-split-state"
	// ReasonMoveMismatchedClose indicates a move into an occupied
	// resonator by a different qubit than the one parked there.
	ReasonMoveMismatchedClose Reason = "move-mismatched-close"
	// ReasonMoveQubitInUse indicates an instruction acting on a qubit
	// whose state is currently parked in a resonator.
	ReasonMoveQubitInUse Reason = "move-qubit-in-use"
	// ReasonMoveUnsupported indicates a move instruction on an
	// architecture without any move-capable gate.
	ReasonMoveUnsupported Reason = "move-unsupported"
	// ReasonMoveUnclosedSandwich indicates a circuit ending while a qubit
	// state is still parked in a resonator.
	ReasonMoveUnclosedSandwich Reason = "move-unclosed-sandwich"
)

// Failure is a structured description of the first violation found while
// validating a circuit batch.  It implements error, and carries enough
// context to reconstruct the failure programmatically.
type Failure struct {
	// Reason classifies this failure.
	Reason Reason
	// CircuitIndex is the index of the failing circuit within the batch,
	// or -1 when the failure is not tied to a particular circuit.
	CircuitIndex int
	// CircuitName is the name of the failing circuit, if any.
	CircuitName string
	// Instruction is the offending instruction, if any.
	Instruction *quantum.Instruction
	// Operation is the resolved operation name, if resolution got that far.
	Operation string
	// Implementation is the resolved implementation name, if any.
	Implementation string
	// Locus is the offending locus as written in the circuit.
	Locus quantum.Locus
	// MappedLocus is the locus after qubit-mapping translation, or nil
	// when no mapping was supplied.
	MappedLocus quantum.Locus
	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface, prefixing the message with the
// failing circuit where known.
func (p *Failure) Error() string {
	if p.CircuitIndex >= 0 && p.CircuitName != "" {
		return fmt.Sprintf("circuit %d (%s): %s", p.CircuitIndex, p.CircuitName, p.Message)
	} else if p.CircuitIndex >= 0 {
		return fmt.Sprintf("circuit %d: %s", p.CircuitIndex, p.Message)
	}
	//
	return p.Message
}

// AsFailure extracts a structured validation failure from an error, returning
// false if the error is of some other kind.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	//
	if errors.As(err, &failure) {
		return failure, true
	}
	//
	return nil, false
}

// failuref constructs a failure with a formatted message and no circuit
// attributed yet.
func failuref(reason Reason, format string, args ...any) *Failure {
	return &Failure{
		Reason:       reason,
		CircuitIndex: -1,
		Message:      fmt.Sprintf(format, args...),
	}
}
