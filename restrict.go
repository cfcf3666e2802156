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

// RestrictFunc maps a Variable to an assumed boolean value. Restrict only
// ever calls it for boolean-variable nodes (Extra, In, Contains); it never
// asks it about a Version or String variable. Returning ok=false leaves
// that variable unconstrained.
type RestrictFunc func(Variable) (value bool, ok bool)

// Restrict rewrites id under the assumption that every boolean variable f
// has an opinion about takes the value f returns: a matching node is
// replaced by its high branch (if the assumed value is true) or its low
// branch (if false). Variables f is silent about, and all Version/String
// variables, are recursed into unchanged. Extras sit lowest in the
// variable order, so eliminating them is close to a leaf-only rewrite.
func Restrict(id NodeID, f RestrictFunc) NodeID {
	global.mu.Lock()
	defer global.mu.Unlock()
	memo := make(map[NodeID]NodeID)
	return global.restrict(id, f, memo)
}

func (in *interner) restrict(id NodeID, f RestrictFunc, memo map[NodeID]NodeID) NodeID {
	if id.IsTrue() || id.IsFalse() {
		return id
	}
	if cached, ok := memo[id]; ok {
		return cached
	}

	n := in.node(id)

	if n.Edges.kind == edgesBoolean {
		if value, ok := f(n.Var); ok {
			branch := n.Edges.low
			if value {
				branch = n.Edges.high
			}
			result := in.restrict(branch.negate(id), f, memo)
			memo[id] = result
			return result
		}
	}

	mapped := n.Edges.mapChildren(id, func(child NodeID) NodeID { return in.restrict(child, f, memo) })
	result := in.createNode(n.Var, mapped)
	memo[id] = result
	return result
}
