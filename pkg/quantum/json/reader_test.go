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
	"testing"

	"github.com/iqm-finland/sdk/pkg/quantum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var architectureDocument = []byte(`{
	"calibration_set_id": "26c5e70f-bea0-43af-bd37-6212ec7d04cb",
	"qubits": ["QB1", "QB2", "QB3"],
	"computational_resonators": ["CR1"],
	"gates": {
		"prx": {
			"implementations": {
				"drag_gaussian": {"loci": [["QB1"], ["QB2"], ["QB3"]]}
			},
			"default_implementation": "drag_gaussian"
		},
		"cz": {
			"implementations": {
				"tgss": {"loci": [["QB1", "QB2"], ["QB2", "QB3"]]}
			},
			"default_implementation": "tgss"
		}
	}
}`)

func TestArchitectureFromBytes(t *testing.T) {
	arch, err := ArchitectureFromBytes(architectureDocument)
	require.NoError(t, err)
	//
	assert.Equal(t, "26c5e70f-bea0-43af-bd37-6212ec7d04cb", arch.CalibrationSetID().String())
	assert.Equal(t, []string{"QB1", "QB2", "QB3"}, arch.Qubits())
	assert.Equal(t, []string{"CR1"}, arch.Resonators())
	//
	cz, ok := arch.Gate("cz")
	require.True(t, ok)
	assert.Equal(t, "tgss", cz.DefaultImplementation)
	assert.Equal(t, []quantum.Locus{{"QB1", "QB2"}, {"QB2", "QB3"}}, cz.Implementations["tgss"].Loci)
}

func TestArchitectureFromBytes_Malformed(t *testing.T) {
	// Malformed calibration set id.
	_, err := ArchitectureFromBytes([]byte(`{"calibration_set_id": "not-a-uuid"}`))
	assert.Error(t, err)
	// Default implementation not declared.
	_, err = ArchitectureFromBytes([]byte(`{
		"calibration_set_id": "26c5e70f-bea0-43af-bd37-6212ec7d04cb",
		"qubits": ["QB1"],
		"gates": {"prx": {"implementations": {}, "default_implementation": "drag_gaussian"}}
	}`))
	assert.Error(t, err)
	// Component declared as both qubit and resonator.
	_, err = ArchitectureFromBytes([]byte(`{
		"calibration_set_id": "26c5e70f-bea0-43af-bd37-6212ec7d04cb",
		"qubits": ["QB1"],
		"computational_resonators": ["QB1"]
	}`))
	assert.Error(t, err)
	// Not JSON at all.
	_, err = ArchitectureFromBytes([]byte(`calibration`))
	assert.Error(t, err)
}

func TestCircuitsFromBytes(t *testing.T) {
	document := []byte(`{
		"circuits": [
			{
				"name": "bell",
				"instructions": [
					{"name": "prx", "qubits": ["QB1"], "args": {"angle_t": 0.25, "phase_t": 0.0}},
					{"name": "cz", "qubits": ["QB1", "QB2"]},
					{"name": "measure", "qubits": ["QB1", "QB2"], "implementation": "constant",
						"args": {"key": "m0"}}
				]
			}
		]
	}`)
	//
	circuits, err := CircuitsFromBytes(document)
	require.NoError(t, err)
	require.Len(t, circuits, 1)
	//
	bell := circuits[0]
	assert.Equal(t, "bell", bell.Name)
	require.Len(t, bell.Instructions, 3)
	assert.Equal(t, quantum.Locus{"QB1", "QB2"}, bell.Instructions[1].Qubits)
	assert.Equal(t, "constant", bell.Instructions[2].Implementation)
	assert.Equal(t, "m0", bell.Instructions[2].Args["key"])
}

func TestCircuitsFromBytes_BareArray(t *testing.T) {
	document := []byte(`[{"name": "c0", "instructions": [{"name": "prx", "qubits": ["QB1"]}]}]`)
	//
	circuits, err := CircuitsFromBytes(document)
	require.NoError(t, err)
	require.Len(t, circuits, 1)
	assert.Equal(t, "c0", circuits[0].Name)
}

func TestMappingFromBytes(t *testing.T) {
	mapping, err := MappingFromBytes([]byte(`{"q0": "QB1", "q1": "QB2"}`))
	require.NoError(t, err)
	assert.Equal(t, quantum.QubitMapping{"q0": "QB1", "q1": "QB2"}, mapping)
	//
	_, err = MappingFromBytes([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestArchitectureRoundTrip(t *testing.T) {
	arch, err := ArchitectureFromBytes(architectureDocument)
	require.NoError(t, err)
	//
	bytes, err := ArchitectureToBytes(arch)
	require.NoError(t, err)
	//
	again, err := ArchitectureFromBytes(bytes)
	require.NoError(t, err)
	assert.Equal(t, arch.CalibrationSetID(), again.CalibrationSetID())
	assert.Equal(t, arch.Qubits(), again.Qubits())
	assert.Equal(t, arch.Resonators(), again.Resonators())
	assert.Equal(t, arch.GateNames(), again.GateNames())
}
