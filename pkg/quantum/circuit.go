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
package quantum

import (
	"fmt"
)

// Instruction is a single native operation applied at a given locus.  The
// locus uses logical qubit names when the enclosing batch carries a qubit
// mapping, and physical component names otherwise.
type Instruction struct {
	// Name of the operation, e.g. "prx", "cz" or "move".
	Name string
	// Qubits gives the locus this instruction is applied at.
	Qubits Locus
	// Implementation optionally requests a specific calibrated
	// implementation of the operation.  Empty means any.
	Implementation string
	// Args holds the operation arguments, e.g. the result label of a
	// measurement under the key "key".
	Args map[string]any
}

// String generates a human-readable string, such as "cz(QB1, QB2)".
func (p *Instruction) String() string {
	if p.Implementation != "" {
		return fmt.Sprintf("%s.%s%s", p.Name, p.Implementation, p.Qubits)
	}
	//
	return fmt.Sprintf("%s%s", p.Name, p.Qubits)
}

// Circuit is a named, ordered sequence of instructions.  Order is execution
// order and is semantically significant.
type Circuit struct {
	// Name of the circuit, used in diagnostics.
	Name string
	// Instructions in execution order.
	Instructions []Instruction
	// Metadata optionally carries arbitrary caller data; it plays no part
	// in validation.
	Metadata map[string]any
}

// AllQubits returns the set of all (pre-mapping) qubit names used by any
// instruction of this circuit.
func (p *Circuit) AllQubits() map[string]bool {
	qubits := make(map[string]bool)
	//
	for _, instr := range p.Instructions {
		for _, q := range instr.Qubits {
			qubits[q] = true
		}
	}
	//
	return qubits
}

// QubitMapping translates logical qubit names (as used in circuits) into
// physical component names (as known to an architecture).  A nil mapping
// means circuits already use physical names.
type QubitMapping map[string]string

// Apply translates a locus through this mapping.  Names without a mapping
// entry, and every name when the mapping is nil, pass through unchanged.
// The argument is never mutated.
func (p QubitMapping) Apply(locus Locus) Locus {
	if p == nil {
		return locus
	}
	//
	mapped := make(Locus, len(locus))
	//
	for i, q := range locus {
		if phys, ok := p[q]; ok {
			mapped[i] = phys
		} else {
			mapped[i] = q
		}
	}
	//
	return mapped
}
