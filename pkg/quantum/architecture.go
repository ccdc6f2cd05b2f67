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
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Locus is an ordered tuple of component names an operation acts on.  Order is
// significant: for example, a move gate always names the qubit first and the
// resonator second.
type Locus []string

// Equals checks whether two loci are identical, including order.
func (p Locus) Equals(other Locus) bool {
	return slices.Equal(p, other)
}

// Permutes checks whether this locus is some permutation of the other locus.
// Observe that this is multiset equality, hence (a, b, b) does not permute
// (a, a, b).
func (p Locus) Permutes(other Locus) bool {
	if len(p) != len(other) {
		return false
	}
	//
	lhs, rhs := slices.Clone(p), slices.Clone(other)
	slices.Sort(lhs)
	slices.Sort(rhs)
	//
	return slices.Equal(lhs, rhs)
}

// String generates a human-readable string, such as "(QB1, QB2)".
func (p Locus) String() string {
	return fmt.Sprintf("(%s)", strings.Join(p, ", "))
}

// ImplementationInfo describes one calibrated implementation of a gate,
// namely the set of loci it may be applied to.
type ImplementationInfo struct {
	// Loci this implementation is calibrated for.
	Loci []Locus
}

// GateInfo describes a gate available on a given architecture, as one or more
// named implementations each declaring its own allowed loci.
type GateInfo struct {
	// Implementations maps implementation names (e.g. "drag_gaussian") to
	// their calibrated loci.
	Implementations map[string]ImplementationInfo
	// DefaultImplementation is used when an instruction does not request a
	// specific implementation.
	DefaultImplementation string
}

// Loci returns the loci declared across all implementations of this gate,
// without duplicates.  An instruction which does not request a specific
// implementation may target any of these.
func (p GateInfo) Loci() []Locus {
	var (
		loci []Locus
		seen = make(map[string]bool)
	)
	// Iterate implementations in a deterministic order.
	for _, name := range sortedKeys(p.Implementations) {
		for _, locus := range p.Implementations[name].Loci {
			if key := locus.String(); !seen[key] {
				seen[key] = true
				loci = append(loci, locus)
			}
		}
	}
	//
	return loci
}

// Architecture is an immutable snapshot of a dynamic quantum architecture,
// valid for exactly one calibration set.  It records which components exist,
// which gates are calibrated, and at which loci.  Once constructed it is never
// mutated, hence it may be shared freely between concurrent validation calls.
type Architecture struct {
	// Calibration set this snapshot was derived from.
	calibrationSetID uuid.UUID
	// Qubits addressable on this architecture.
	qubits map[string]bool
	// Computational resonators addressable on this architecture.  Disjoint
	// from the qubits.
	resonators map[string]bool
	// Calibrated gates, keyed by operation name.
	gates map[string]GateInfo
}

// NewArchitecture constructs an architecture snapshot from its raw parts.
// This fails if the qubit and resonator sets are not disjoint, since a
// component must be exactly one or the other.
func NewArchitecture(calibrationSetID uuid.UUID, qubits []string, resonators []string,
	gates map[string]GateInfo) (*Architecture, error) {
	var (
		qubitSet     = make(map[string]bool, len(qubits))
		resonatorSet = make(map[string]bool, len(resonators))
	)
	//
	for _, q := range qubits {
		qubitSet[q] = true
	}
	//
	for _, r := range resonators {
		if qubitSet[r] {
			return nil, fmt.Errorf("component %s declared as both qubit and resonator", r)
		}
		//
		resonatorSet[r] = true
	}
	// Copy gate map to keep the snapshot immutable.
	gateMap := make(map[string]GateInfo, len(gates))
	for name, info := range gates {
		gateMap[name] = info
	}
	//
	return &Architecture{calibrationSetID, qubitSet, resonatorSet, gateMap}, nil
}

// CalibrationSetID returns the identifier of the calibration set this
// snapshot describes.
func (p *Architecture) CalibrationSetID() uuid.UUID {
	return p.calibrationSetID
}

// HasComponent checks whether a named component (qubit or resonator) exists
// on this architecture.
func (p *Architecture) HasComponent(name string) bool {
	return p.qubits[name] || p.resonators[name]
}

// IsQubit checks whether a named component is a qubit on this architecture.
func (p *Architecture) IsQubit(name string) bool {
	return p.qubits[name]
}

// IsResonator checks whether a named component is a computational resonator
// on this architecture.
func (p *Architecture) IsResonator(name string) bool {
	return p.resonators[name]
}

// Qubits returns the qubits of this architecture in sorted order.
func (p *Architecture) Qubits() []string {
	return sortedKeys(p.qubits)
}

// Resonators returns the computational resonators of this architecture in
// sorted order.
func (p *Architecture) Resonators() []string {
	return sortedKeys(p.resonators)
}

// Components returns all components (qubits and resonators) of this
// architecture in sorted order.
func (p *Architecture) Components() []string {
	components := append(p.Qubits(), p.Resonators()...)
	slices.Sort(components)
	//
	return components
}

// Gate looks up the gate info for a given operation name, returning false if
// the operation is not calibrated on this architecture.
func (p *Architecture) Gate(name string) (GateInfo, bool) {
	info, ok := p.gates[name]
	return info, ok
}

// GateNames returns the names of all calibrated gates in sorted order.
func (p *Architecture) GateNames() []string {
	return sortedKeys(p.gates)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	//
	slices.Sort(keys)
	//
	return keys
}
