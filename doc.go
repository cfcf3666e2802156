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

/*
Package markeralgebra represents PEP 508 environment markers as a Reduced
Ordered Algebraic Decision Diagram (ADD).

A PEP 508 marker is a boolean formula over environment variables such as
python_full_version, os_name, sys_platform, and extra. During universal
dependency resolution, markers from many requirements are combined with
conjunction, disjunction, negation, and tested for disjointness; naive
expression trees blow up and fail to recognize when two syntactically
different markers denote the same set of environments.

This package gives every marker function a canonical value: two markers are
represented by the same Node ID if and only if they accept the same set of
environments. Nodes are interned globally, so Lift, And, Or, and Not are
pure functions from inputs to a stable ID, and equality of IDs coincides
with semantic equality of the marker functions they represent.

The package does not parse marker syntax, evaluate a marker against a
concrete environment, or perform dependency resolution; those are the
responsibility of callers. It is deliberately narrow: an algebra engine for
a canonical, composable marker representation, not a SAT solver or a marker
language implementation.
*/
package markeralgebra
