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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircuit_AllQubits(t *testing.T) {
	c := Circuit{
		Name: "c0",
		Instructions: []Instruction{
			{Name: "prx", Qubits: Locus{"q0"}},
			{Name: "cz", Qubits: Locus{"q0", "q1"}},
			{Name: "measure", Qubits: Locus{"q1", "q2"}},
		},
	}
	//
	assert.Equal(t, map[string]bool{"q0": true, "q1": true, "q2": true}, c.AllQubits())
}

func TestQubitMapping_Apply(t *testing.T) {
	mapping := QubitMapping{"q0": "QB1", "q1": "QB2"}
	//
	assert.Equal(t, Locus{"QB1", "QB2"}, mapping.Apply(Locus{"q0", "q1"}))
	// Unmapped names pass through unchanged.
	assert.Equal(t, Locus{"QB1", "CR1"}, mapping.Apply(Locus{"q0", "CR1"}))
	// A nil mapping is the identity.
	var none QubitMapping
	assert.Equal(t, Locus{"q0"}, none.Apply(Locus{"q0"}))
}

func TestQubitMapping_ApplyDoesNotMutate(t *testing.T) {
	var (
		mapping = QubitMapping{"q0": "QB1"}
		locus   = Locus{"q0"}
	)
	//
	_ = mapping.Apply(locus)
	assert.Equal(t, Locus{"q0"}, locus)
}

func TestInstruction_String(t *testing.T) {
	instr := Instruction{Name: "cz", Qubits: Locus{"QB1", "QB2"}}
	assert.Equal(t, "cz(QB1, QB2)", instr.String())
	//
	instr.Implementation = "tgss"
	assert.Equal(t, "cz.tgss(QB1, QB2)", instr.String())
}

func TestOperation_Lookup(t *testing.T) {
	info, ok := Operation("cz")
	assert.True(t, ok)
	assert.True(t, info.Symmetric)
	assert.False(t, info.Factorizable)
	//
	info, ok = Operation("measure")
	assert.True(t, ok)
	assert.True(t, info.Factorizable)
	assert.Equal(t, RoleMeasurement, info.Role)
	//
	info, ok = Operation("barrier")
	assert.True(t, ok)
	assert.True(t, info.NoCalibrationNeeded)
	//
	_, ok = Operation("toffoli")
	assert.False(t, ok)
}

func TestOperation_Aliases(t *testing.T) {
	// Deprecated aliases resolve to the operation they stand for.
	measurement, ok := Operation("measurement")
	assert.True(t, ok)
	measure, _ := Operation("measure")
	assert.Equal(t, measure, measurement)
	//
	assert.Equal(t, "measure", CanonicalOperationName("measurement"))
	assert.Equal(t, "prx", CanonicalOperationName("phased_rx"))
	assert.Equal(t, "cz", CanonicalOperationName("cz"))
	assert.Equal(t, "toffoli", CanonicalOperationName("toffoli"))
}
