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
	"testing"

	"github.com/google/uuid"
	"github.com/iqm-finland/sdk/pkg/quantum"
	"github.com/stretchr/testify/require"
)

// testArchitecture constructs the snapshot used throughout these tests:
// three qubits, two computational resonators, and calibrated prx, cz,
// measure, move and reset gates.
func testArchitecture(t *testing.T) *quantum.Architecture {
	t.Helper()
	//
	arch, err := quantum.NewArchitecture(
		uuid.MustParse("26c5e70f-bea0-43af-bd37-6212ec7d04cb"),
		[]string{"QB1", "QB2", "QB3"},
		[]string{"CR1", "CR2"},
		map[string]quantum.GateInfo{
			"prx": {
				Implementations: map[string]quantum.ImplementationInfo{
					"drag_gaussian": {Loci: []quantum.Locus{{"QB1"}, {"QB2"}, {"QB3"}}},
					"drag_crf":      {Loci: []quantum.Locus{{"QB1"}, {"QB2"}}},
				},
				DefaultImplementation: "drag_gaussian",
			},
			"cz": {
				Implementations: map[string]quantum.ImplementationInfo{
					"tgss": {Loci: []quantum.Locus{{"QB1", "QB2"}, {"QB2", "QB3"}}},
				},
				DefaultImplementation: "tgss",
			},
			"measure": {
				Implementations: map[string]quantum.ImplementationInfo{
					"constant": {Loci: []quantum.Locus{{"QB1"}, {"QB2"}, {"QB3"}}},
				},
				DefaultImplementation: "constant",
			},
			"move": {
				Implementations: map[string]quantum.ImplementationInfo{
					"tgss_crf": {Loci: []quantum.Locus{{"QB1", "CR1"}, {"QB2", "CR1"}, {"QB3", "CR2"}}},
				},
				DefaultImplementation: "tgss_crf",
			},
			"reset": {
				Implementations: map[string]quantum.ImplementationInfo{
					"reset_wait": {Loci: []quantum.Locus{{"QB1"}, {"QB2"}}},
				},
				DefaultImplementation: "reset_wait",
			},
		})
	require.NoError(t, err)
	//
	return arch
}

// testArchitectureNoMoves is as testArchitecture, but without any
// move-capable gate.
func testArchitectureNoMoves(t *testing.T) *quantum.Architecture {
	t.Helper()
	//
	arch, err := quantum.NewArchitecture(
		uuid.MustParse("8a28be71-b819-419d-bfcb-9ed9186b7473"),
		[]string{"QB1", "QB2", "QB3"},
		nil,
		map[string]quantum.GateInfo{
			"prx": {
				Implementations: map[string]quantum.ImplementationInfo{
					"drag_gaussian": {Loci: []quantum.Locus{{"QB1"}, {"QB2"}, {"QB3"}}},
				},
				DefaultImplementation: "drag_gaussian",
			},
		})
	require.NoError(t, err)
	//
	return arch
}

func prx(qubit string) quantum.Instruction {
	return quantum.Instruction{
		Name:   "prx",
		Qubits: quantum.Locus{qubit},
		Args:   map[string]any{"angle_t": 0.25, "phase_t": 0.0},
	}
}

func cz(a, b string) quantum.Instruction {
	return quantum.Instruction{Name: "cz", Qubits: quantum.Locus{a, b}}
}

func measure(key string, qubits ...string) quantum.Instruction {
	return quantum.Instruction{
		Name:   "measure",
		Qubits: quantum.Locus(qubits),
		Args:   map[string]any{"key": key},
	}
}

func move(qubit, resonator string) quantum.Instruction {
	return quantum.Instruction{Name: "move", Qubits: quantum.Locus{qubit, resonator}}
}

func barrier(qubits ...string) quantum.Instruction {
	return quantum.Instruction{Name: "barrier", Qubits: quantum.Locus(qubits)}
}

func circuit(name string, instructions ...quantum.Instruction) quantum.Circuit {
	return quantum.Circuit{Name: name, Instructions: instructions}
}
