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
package json

import (
	"encoding/json"

	"github.com/iqm-finland/sdk/pkg/quantum"
)

// ArchitectureToBytes serialises an architecture snapshot into the JSON
// notation accepted by ArchitectureFromBytes.
func ArchitectureToBytes(arch *quantum.Architecture) ([]byte, error) {
	raw := jsonArchitecture{
		CalibrationSetID:        arch.CalibrationSetID().String(),
		Qubits:                  arch.Qubits(),
		ComputationalResonators: arch.Resonators(),
		Gates:                   make(map[string]jsonGateInfo),
	}
	//
	for _, name := range arch.GateNames() {
		gate, _ := arch.Gate(name)
		rawGate := jsonGateInfo{
			Implementations:       make(map[string]jsonImplementation),
			DefaultImplementation: gate.DefaultImplementation,
		}
		//
		for implName, impl := range gate.Implementations {
			loci := make([][]string, len(impl.Loci))
			for i, locus := range impl.Loci {
				loci[i] = []string(locus)
			}
			//
			rawGate.Implementations[implName] = jsonImplementation{Loci: loci}
		}
		//
		raw.Gates[name] = rawGate
	}
	//
	return json.MarshalIndent(raw, "", "  ")
}

// CircuitsToBytes serialises a circuit batch into the JSON notation accepted
// by CircuitsFromBytes (the wrapped form).
func CircuitsToBytes(circuits []quantum.Circuit) ([]byte, error) {
	raw := jsonBatch{Circuits: make([]jsonCircuit, len(circuits))}
	//
	for i, circuit := range circuits {
		instructions := make([]jsonInstruction, len(circuit.Instructions))
		//
		for j, instr := range circuit.Instructions {
			instructions[j] = jsonInstruction{
				Name:           instr.Name,
				Qubits:         []string(instr.Qubits),
				Implementation: instr.Implementation,
				Args:           instr.Args,
			}
		}
		//
		raw.Circuits[i] = jsonCircuit{
			Name:         circuit.Name,
			Instructions: instructions,
			Metadata:     circuit.Metadata,
		}
	}
	//
	return json.MarshalIndent(raw, "", "  ")
}
