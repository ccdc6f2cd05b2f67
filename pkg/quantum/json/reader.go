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

// Package json reads and writes architecture snapshots, circuit batches and
// qubit mappings in the JSON notation used by the server.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/iqm-finland/sdk/pkg/quantum"
)

type jsonArchitecture struct {
	CalibrationSetID        string                  `json:"calibration_set_id"`
	Qubits                  []string                `json:"qubits"`
	ComputationalResonators []string                `json:"computational_resonators"`
	Gates                   map[string]jsonGateInfo `json:"gates"`
}

type jsonGateInfo struct {
	Implementations       map[string]jsonImplementation `json:"implementations"`
	DefaultImplementation string                        `json:"default_implementation"`
}

type jsonImplementation struct {
	Loci [][]string `json:"loci"`
}

type jsonInstruction struct {
	Name           string         `json:"name"`
	Qubits         []string       `json:"qubits"`
	Implementation string         `json:"implementation,omitempty"`
	Args           map[string]any `json:"args,omitempty"`
}

type jsonCircuit struct {
	Name         string            `json:"name"`
	Instructions []jsonInstruction `json:"instructions"`
	Metadata     map[string]any    `json:"metadata,omitempty"`
}

type jsonBatch struct {
	Circuits []jsonCircuit `json:"circuits"`
}

// ArchitectureFromBytes parses a dynamic quantum architecture snapshot
// expressed in JSON notation, as served per calibration set.
func ArchitectureFromBytes(data []byte) (*quantum.Architecture, error) {
	var raw jsonArchitecture
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	//
	calibrationSetID, err := uuid.Parse(raw.CalibrationSetID)
	if err != nil {
		return nil, fmt.Errorf("malformed calibration_set_id %q: %w", raw.CalibrationSetID, err)
	}
	// Translate the gate table.
	gates := make(map[string]quantum.GateInfo, len(raw.Gates))
	//
	for name, rawGate := range raw.Gates {
		implementations := make(map[string]quantum.ImplementationInfo, len(rawGate.Implementations))
		//
		for implName, rawImpl := range rawGate.Implementations {
			loci := make([]quantum.Locus, len(rawImpl.Loci))
			for i, locus := range rawImpl.Loci {
				loci[i] = quantum.Locus(locus)
			}
			//
			implementations[implName] = quantum.ImplementationInfo{Loci: loci}
		}
		// Sanity check the default implementation exists.
		if def := rawGate.DefaultImplementation; def != "" {
			if _, ok := implementations[def]; !ok {
				return nil, fmt.Errorf("gate %s: default implementation %q not declared", name, def)
			}
		}
		//
		gates[name] = quantum.GateInfo{
			Implementations:       implementations,
			DefaultImplementation: rawGate.DefaultImplementation,
		}
	}
	//
	return quantum.NewArchitecture(calibrationSetID, raw.Qubits, raw.ComputationalResonators, gates)
}

// CircuitsFromBytes parses a circuit batch expressed in JSON notation.  The
// document is either an object with a "circuits" array, or (for convenience)
// a bare array of circuits.
func CircuitsFromBytes(data []byte) ([]quantum.Circuit, error) {
	var (
		batch jsonBatch
		raw   []jsonCircuit
	)
	// Attempt the wrapped form first, falling back on a bare array.
	if err := json.Unmarshal(data, &batch); err == nil && batch.Circuits != nil {
		raw = batch.Circuits
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	//
	circuits := make([]quantum.Circuit, len(raw))
	//
	for i, rawCircuit := range raw {
		instructions := make([]quantum.Instruction, len(rawCircuit.Instructions))
		//
		for j, rawInstr := range rawCircuit.Instructions {
			instructions[j] = quantum.Instruction{
				Name:           rawInstr.Name,
				Qubits:         quantum.Locus(rawInstr.Qubits),
				Implementation: rawInstr.Implementation,
				Args:           rawInstr.Args,
			}
		}
		//
		circuits[i] = quantum.Circuit{
			Name:         rawCircuit.Name,
			Instructions: instructions,
			Metadata:     rawCircuit.Metadata,
		}
	}
	//
	return circuits, nil
}

// MappingFromBytes parses a logical-to-physical qubit mapping expressed as a
// JSON object, e.g. {"q0": "QB1", "q1": "QB2"}.
func MappingFromBytes(data []byte) (quantum.QubitMapping, error) {
	var mapping quantum.QubitMapping
	//
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, err
	}
	//
	return mapping, nil
}
