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

import "sort"

// SimplifyPythonVersions rewrites id under the assumption that the
// environment's python_full_version lies in p, narrowing every
// python_full_version node's ranges to p and widening the surviving
// partition's outer edges to cover the whole domain. The result is only
// equivalent to id when that assumption holds; use ComplexifyPythonVersions
// to undo it.
func SimplifyPythonVersions(id NodeID, p Range[Version]) NodeID {
	global.mu.Lock()
	defer global.mu.Unlock()
	if p.IsEmpty() {
		return FalseID
	}
	if p.IsEverything() {
		return id
	}
	return global.simplifyPythonVersions(id, p, make(map[NodeID]NodeID))
}

// ComplexifyPythonVersions re-imposes the constraint
// python_full_version ∈ p on id, the inverse of SimplifyPythonVersions.
func ComplexifyPythonVersions(id NodeID, p Range[Version]) NodeID {
	global.mu.Lock()
	defer global.mu.Unlock()
	if p.IsEmpty() {
		return FalseID
	}
	return global.complexifyPythonVersions(id, p, make(map[NodeID]NodeID))
}

var pythonFullVersionVar = VersionVariable(pythonFullVersionKey)

func (in *interner) simplifyPythonVersions(id NodeID, p Range[Version], memo map[NodeID]NodeID) NodeID {
	if id.IsTrue() || id.IsFalse() {
		return id
	}
	if cached, ok := memo[id]; ok {
		return cached
	}

	n := in.node(id)

	var result NodeID
	if n.Var == pythonFullVersionVar {
		var kept []edge[Version]
		for _, e := range n.Edges.version {
			if inter := intersectRange(e.r, p); !inter.IsEmpty() {
				kept = append(kept, edge[Version]{r: inter, node: e.node})
			}
		}
		for i := range kept {
			kept[i].node = in.simplifyPythonVersions(kept[i].node.negate(id), p, memo)
		}
		switch len(kept) {
		case 0:
			result = FalseID
		default:
			kept[0].r = kept[0].r.withLowUnbounded()
			kept[len(kept)-1].r = kept[len(kept)-1].r.withHighUnbounded()
			result = in.createNode(n.Var, Edges{kind: edgesVersion, version: kept})
		}
	} else {
		mapped := n.Edges.mapChildren(id, func(child NodeID) NodeID {
			return in.simplifyPythonVersions(child, p, memo)
		})
		result = in.createNode(n.Var, mapped)
	}

	memo[id] = result
	return result
}

func (in *interner) complexifyPythonVersions(id NodeID, p Range[Version], memo map[NodeID]NodeID) NodeID {
	if id.IsTrue() {
		return in.createNode(pythonFullVersionVar, edgesFromVersionRange(p))
	}
	if id.IsFalse() {
		return FalseID
	}
	if cached, ok := memo[id]; ok {
		return cached
	}

	n := in.node(id)

	var result NodeID
	if n.Var == pythonFullVersionVar {
		var kept []edge[Version]
		for _, e := range n.Edges.version {
			if inter := intersectRange(e.r, p); !inter.IsEmpty() {
				kept = append(kept, edge[Version]{r: inter, node: e.node})
			}
		}
		// Children sort after python_full_version, so none of them holds a
		// python_full_version node to clip; they are kept as they are.
		for i := range kept {
			kept[i].node = kept[i].node.negate(id)
		}
		if len(kept) == 0 {
			result = FalseID
		} else {
			all := append([]edge[Version]{}, kept...)
			for _, outside := range complementRange(p) {
				all = append(all, edge[Version]{r: outside, node: FalseID})
			}
			sort.Slice(all, func(i, j int) bool {
				return compareLowBound(all[i].r.lowKind, all[i].r.low, all[j].r.lowKind, all[j].r.low) < 0
			})
			all = fuseSortedAdjacent(all)
			result = in.createNode(n.Var, Edges{kind: edgesVersion, version: all})
		}
	} else if compareVariable(n.Var, pythonFullVersionVar) > 0 {
		// No python_full_version node can sit below n, so the window is
		// conjoined on top of it.
		result = in.and(id, in.createNode(pythonFullVersionVar, edgesFromVersionRange(p)))
	} else {
		mapped := n.Edges.mapChildren(id, func(child NodeID) NodeID {
			return in.complexifyPythonVersions(child, p, memo)
		})
		result = in.createNode(n.Var, mapped)
	}

	memo[id] = result
	return result
}
