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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocus_Equals(t *testing.T) {
	assert.True(t, Locus{"QB1", "QB2"}.Equals(Locus{"QB1", "QB2"}))
	assert.False(t, Locus{"QB1", "QB2"}.Equals(Locus{"QB2", "QB1"}))
	assert.False(t, Locus{"QB1"}.Equals(Locus{"QB1", "QB2"}))
}

func TestLocus_Permutes(t *testing.T) {
	assert.True(t, Locus{"QB2", "QB1"}.Permutes(Locus{"QB1", "QB2"}))
	assert.True(t, Locus{"QB1"}.Permutes(Locus{"QB1"}))
	assert.False(t, Locus{"QB1", "QB3"}.Permutes(Locus{"QB1", "QB2"}))
	// Multiset equality, not just same name sets.
	assert.False(t, Locus{"QB1", "QB2", "QB2"}.Permutes(Locus{"QB1", "QB1", "QB2"}))
}

func TestLocus_String(t *testing.T) {
	assert.Equal(t, "(QB1, QB2)", Locus{"QB1", "QB2"}.String())
	assert.Equal(t, "(QB1)", Locus{"QB1"}.String())
}

func TestArchitecture_DisjointComponents(t *testing.T) {
	_, err := NewArchitecture(uuid.New(), []string{"QB1", "QB2"}, []string{"QB2"}, nil)
	assert.Error(t, err)
}

func TestArchitecture_Queries(t *testing.T) {
	arch, err := NewArchitecture(uuid.New(),
		[]string{"QB2", "QB1"}, []string{"CR1"},
		map[string]GateInfo{
			"prx": {
				Implementations: map[string]ImplementationInfo{
					"drag_gaussian": {Loci: []Locus{{"QB1"}, {"QB2"}}},
				},
				DefaultImplementation: "drag_gaussian",
			},
		})
	require.NoError(t, err)
	//
	assert.True(t, arch.IsQubit("QB1"))
	assert.False(t, arch.IsQubit("CR1"))
	assert.True(t, arch.IsResonator("CR1"))
	assert.True(t, arch.HasComponent("CR1"))
	assert.False(t, arch.HasComponent("QB3"))
	//
	assert.Equal(t, []string{"QB1", "QB2"}, arch.Qubits())
	assert.Equal(t, []string{"CR1"}, arch.Resonators())
	assert.Equal(t, []string{"CR1", "QB1", "QB2"}, arch.Components())
	assert.Equal(t, []string{"prx"}, arch.GateNames())
	//
	_, ok := arch.Gate("prx")
	assert.True(t, ok)
	_, ok = arch.Gate("cz")
	assert.False(t, ok)
}

func TestGateInfo_LociUnion(t *testing.T) {
	gate := GateInfo{
		Implementations: map[string]ImplementationInfo{
			"fast": {Loci: []Locus{{"QB1", "QB2"}, {"QB2", "QB3"}}},
			"slow": {Loci: []Locus{{"QB2", "QB3"}, {"QB3", "QB4"}}},
		},
		DefaultImplementation: "fast",
	}
	// Union over all implementations, without duplicates.
	loci := gate.Loci()
	assert.Len(t, loci, 3)
	assert.Contains(t, loci, Locus{"QB1", "QB2"})
	assert.Contains(t, loci, Locus{"QB2", "QB3"})
	assert.Contains(t, loci, Locus{"QB3", "QB4"})
}
