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

// Role classifies operations by what they do, independently of what a given
// architecture chooses to call them.  Behaviour which depends on the kind of
// an operation (e.g. which operations may act on a qubit whose state is
// parked in a resonator) keys on the role rather than the name.
type Role int

const (
	// RoleBarrier identifies no-op scheduling barriers.
	RoleBarrier Role = iota
	// RoleDelay identifies timed idles.
	RoleDelay
	// RoleMeasurement identifies projective measurements producing a
	// labelled result.
	RoleMeasurement
	// RoleRotation identifies unconditional single-qubit rotations.
	RoleRotation
	// RoleConditionalRotation identifies classically controlled
	// single-qubit rotations.
	RoleConditionalRotation
	// RoleEntangling identifies multi-qubit entangling gates.
	RoleEntangling
	// RoleMove identifies gates which exchange a qubit state with a
	// computational resonator.
	RoleMove
	// RoleReset identifies non-unitary reset operations.
	RoleReset
)

// ArgKind constrains the type of an operation argument value.
type ArgKind int

const (
	// ArgString accepts string values.
	ArgString ArgKind = iota
	// ArgFloat accepts float64 (or int) values.
	ArgFloat
)

// AnyArity indicates an operation accepting a locus of any positive length.
const AnyArity = 0

// OperationInfo statically describes a native operation, independently of any
// architecture snapshot.
type OperationInfo struct {
	// Arity is the required locus length, or AnyArity.
	Arity int
	// Symmetric operations accept any permutation of a declared locus.
	Symmetric bool
	// Factorizable operations have their locus validated component by
	// component rather than as a fixed tuple.
	Factorizable bool
	// NoCalibrationNeeded operations are available on every component of
	// every architecture, without a gate-info lookup.
	NoCalibrationNeeded bool
	// Role classifies this operation semantically.
	Role Role
	// Args maps required argument names to their expected kinds.
	Args map[string]ArgKind
	// RenamedTo marks a deprecated alias, naming the operation it stands
	// for.  All other fields are ignored on aliases.
	RenamedTo string
}

// operations is the table of all supported native operations.  Note the two
// deprecated aliases, kept so that circuits produced by older tooling still
// validate.
var operations = map[string]OperationInfo{
	"barrier": {
		Arity:               AnyArity,
		NoCalibrationNeeded: true,
		Role:                RoleBarrier,
	},
	"delay": {
		Arity:               AnyArity,
		NoCalibrationNeeded: true,
		Role:                RoleDelay,
		Args:                map[string]ArgKind{"duration": ArgFloat},
	},
	"measure": {
		Arity:        AnyArity,
		Factorizable: true,
		Role:         RoleMeasurement,
		Args:         map[string]ArgKind{"key": ArgString},
	},
	"measurement": {RenamedTo: "measure"},
	"prx": {
		Arity: 1,
		Role:  RoleRotation,
		Args: map[string]ArgKind{
			"angle_t": ArgFloat,
			"phase_t": ArgFloat,
		},
	},
	"phased_rx": {RenamedTo: "prx"},
	"cc_prx": {
		Arity: 1,
		Role:  RoleConditionalRotation,
		Args: map[string]ArgKind{
			"angle_t":        ArgFloat,
			"phase_t":        ArgFloat,
			"feedback_qubit": ArgString,
			"feedback_key":   ArgString,
		},
	},
	"cz": {
		Arity:     2,
		Symmetric: true,
		Role:      RoleEntangling,
	},
	"move": {
		Arity: 2,
		Role:  RoleMove,
	},
	"reset": {
		Arity:        AnyArity,
		Factorizable: true,
		Role:         RoleReset,
	},
}

// Operation resolves an operation name against the static operation table,
// following deprecated aliases.  It returns false if the name is unknown.
func Operation(name string) (OperationInfo, bool) {
	info, ok := operations[name]
	//
	if ok && info.RenamedTo != "" {
		info, ok = operations[info.RenamedTo]
	}
	//
	return info, ok
}

// CanonicalOperationName resolves deprecated aliases, returning the name
// unchanged when it is not an alias (including unknown names).
func CanonicalOperationName(name string) string {
	if info, ok := operations[name]; ok && info.RenamedTo != "" {
		return info.RenamedTo
	}
	//
	return name
}
