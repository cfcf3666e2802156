// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package markeralgebra

// Not returns the marker that holds exactly where x does not. It never
// touches the interner: the complement of any node is expressible by
// flipping the low bit of its id, so this is O(1).
func Not(x NodeID) NodeID { return x.Not() }

// IsTrue reports whether x is the terminal that holds in every
// environment.
func IsTrue(x NodeID) bool { return x.IsTrue() }

// IsFalse reports whether x is the terminal that holds in no environment.
func IsFalse(x NodeID) bool { return x.IsFalse() }

// And returns the marker that holds exactly where both x and y hold.
func And(x, y NodeID) NodeID {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.and(x, y)
}

// Or returns the marker that holds wherever x or y (or both) hold,
// computed from And and Not via De Morgan's law so the interner only ever
// needs one recursive merge algorithm.
func Or(x, y NodeID) NodeID {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.and(x.Not(), y.Not()).Not()
}

// IsDisjoint reports whether x and y hold in no environment simultaneously,
// i.e. whether And(x, y) is false. It is computed structurally instead of
// by calling And so that a disjointness query never grows the "and" memo
// or interns nodes for a result the caller may only need as a bool.
func IsDisjoint(x, y NodeID) bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.isDisjoint(x, y)
}

// and is the recursive core of the algebra: Shannon expansion on whichever
// of x, y carries the earlier variable in the fixed order, or a direct
// edge-by-edge merge when they share a variable. The caller must already
// hold in.mu.
func (in *interner) and(x, y NodeID) NodeID {
	if x == TrueID {
		return y
	}
	if y == TrueID {
		return x
	}
	if x == FalseID || y == FalseID {
		return FalseID
	}
	if x == y {
		return x
	}
	if x == y.Not() {
		return FalseID
	}

	key := [2]NodeID{x, y}
	if id, ok := in.andMemo[key]; ok {
		return id
	}

	// nx, ny are read raw (un-flipped): the spec's rule is to XOR each
	// child id by its parent's complement bit exactly once, as it is read
	// during descent (see Edges.apply/mapChildren). Pre-flipping the whole
	// node here would double that negation.
	nx := in.node(x)
	ny := in.node(y)

	var result NodeID
	switch c := compareVariable(nx.Var, ny.Var); {
	case c == 0:
		merged := nx.Edges.apply(x, ny.Edges, y, in.and)
		result = in.createNode(nx.Var, merged)
	case c < 0:
		mapped := nx.Edges.mapChildren(x, func(child NodeID) NodeID { return in.and(child, y) })
		result = in.createNode(nx.Var, mapped)
	default:
		mapped := ny.Edges.mapChildren(y, func(child NodeID) NodeID { return in.and(x, child) })
		result = in.createNode(ny.Var, mapped)
	}

	in.andMemo[key] = result
	return result
}

// isDisjoint mirrors and's recursion but short-circuits to a bool the
// moment it finds a pair of reachable children that are not disjoint,
// without building or interning any merged node.
func (in *interner) isDisjoint(x, y NodeID) bool {
	if x == TrueID {
		return y == FalseID
	}
	if y == TrueID {
		return x == FalseID
	}
	if x == FalseID || y == FalseID {
		return true
	}
	if x == y {
		return false
	}
	if x == y.Not() {
		return true
	}

	nx := in.node(x)
	ny := in.node(y)

	switch c := compareVariable(nx.Var, ny.Var); {
	case c == 0:
		return nx.Edges.isDisjoint(x, ny.Edges, y, in.isDisjoint)
	case c < 0:
		for _, child := range nx.Edges.childList() {
			if !in.isDisjoint(child.negate(x), y) {
				return false
			}
		}
		return true
	default:
		for _, child := range ny.Edges.childList() {
			if !in.isDisjoint(x, child.negate(y)) {
				return false
			}
		}
		return true
	}
}
