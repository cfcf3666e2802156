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

import "testing"

func TestLiftIsCanonical(t *testing.T) {
	a := LiftExtra("foo", true)
	b := LiftExtra("foo", true)
	if a != b {
		t.Errorf("LiftExtra(\"foo\", true) called twice produced different ids: %v != %v", a, b)
	}
}

func TestNotNotIsIdentity(t *testing.T) {
	x := LiftExtra("bar", true)
	if got := Not(Not(x)); got != x {
		t.Errorf("Not(Not(x)) = %v, want %v", got, x)
	}
}

func TestLiftExtraNegationMatchesNot(t *testing.T) {
	pos := LiftExtra("baz", true)
	neg := LiftExtra("baz", false)
	if neg != Not(pos) {
		t.Errorf("LiftExtra(\"baz\", false) = %v, want Not(LiftExtra(\"baz\", true)) = %v", neg, Not(pos))
	}
}

func TestTerminalIDsAreFixed(t *testing.T) {
	if TrueID != 0 {
		t.Errorf("TrueID = %v, want 0", TrueID)
	}
	if FalseID != Not(TrueID) {
		t.Errorf("FalseID = %v, want Not(TrueID) = %v", FalseID, Not(TrueID))
	}
	if !IsTrue(TrueID) || IsFalse(TrueID) {
		t.Error("TrueID does not report IsTrue/IsFalse correctly")
	}
	if !IsFalse(FalseID) || IsTrue(FalseID) {
		t.Error("FalseID does not report IsTrue/IsFalse correctly")
	}
}

// TestFirstChildNeverComplemented checks the createNode canonicalization
// invariant directly: for every node this test builds, the stored edge
// encountered first (the high child for a boolean node, or the first range's
// child for an ordered one) is never itself a complemented id, since
// createNode flips the whole node instead whenever it would be.
func TestFirstChildNeverComplemented(t *testing.T) {
	ids := []NodeID{
		LiftExtra("a", true),
		LiftExtra("a", false),
		LiftStringComparison("os_name", OpEq, "posix"),
		LiftStringComparison("os_name", OpNotEq, "posix"),
		And(LiftExtra("a", true), LiftStringComparison("os_name", OpEq, "posix")),
		Or(LiftExtra("a", true), LiftStringComparison("os_name", OpEq, "posix")),
	}
	for _, id := range ids {
		raw := id
		if raw.isComplement() {
			raw = raw.Not()
		}
		n := global.node(raw)
		children := n.Edges.childList()
		if len(children) == 0 {
			continue
		}
		if children[0].isComplement() {
			t.Errorf("node %v (raw %v) has a complemented first child %v", id, raw, children[0])
		}
	}
}
