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

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a PEP 440 release segment tuple, such as [3 9 0] for "3.9.0".
//
// The ADD algebra only ever stores release-only versions: every comparison
// reaching the diagram has already had its pre-release, post-release, dev,
// local, and epoch qualifiers discarded by ParseVersion (below), because
// allowing those would break the
// law that the complement of a marker's diagram denotes the complement of
// its value space. Version itself therefore only needs to parse and compare
// release segments; it is a deliberately small slice of what
// deps.dev/util/semver's PEP 440 support covers, scoped to what the algebra
// actually touches.
type Version struct {
	release []int64
}

// ParseVersion parses the release segments of a PEP 440 version string,
// discarding any epoch, pre-release, post-release, dev-release, or local
// segment. It is not a general PEP 440 validator: it is lenient about what
// follows the release segments, on the assumption that callers have already
// validated the full specifier before handing its version to the algebra.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if bang := strings.IndexByte(s, '!'); bang >= 0 {
		// Epoch prefix, e.g. "1!2.0". The algebra does not distinguish
		// epochs; see DESIGN.md.
		s = s[bang+1:]
	}
	if len(s) > 0 && (s[0] == 'v' || s[0] == 'V') {
		s = s[1:]
	}
	var release []int64
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			break
		}
		n, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("markeralgebra: invalid release segment in %q: %w", s, err)
		}
		release = append(release, n)
		if i >= len(s) || s[i] != '.' {
			break
		}
		i++
	}
	if len(release) == 0 {
		return Version{}, fmt.Errorf("markeralgebra: no release segments in %q", s)
	}
	return Version{release: release}, nil
}

// MustParseVersion is ParseVersion for call sites, such as a compile-time
// table or a test, that already know the input is well-formed.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// stripTrailingZeros removes trailing zero release segments, so that "3.9"
// and "3.9.0" compare and print identically. At least one segment is always
// kept.
func (v Version) stripTrailingZeros() Version {
	end := len(v.release)
	for end > 1 && v.release[end-1] == 0 {
		end--
	}
	if end == len(v.release) {
		return v
	}
	return Version{release: append([]int64(nil), v.release[:end]...)}
}

// truncateToMajorMinor returns the first two release segments, the
// truncation python_version applies to python_full_version. Missing minor
// segments are treated as zero.
func (v Version) truncateToMajorMinor() (major, minor int64) {
	major = v.release[0]
	if len(v.release) > 1 {
		minor = v.release[1]
	}
	return major, minor
}

// Compare returns a negative number, zero, or a positive number as v sorts
// before, at the same position as, or after w, treating missing trailing
// segments as zero (so "3.9" == "3.9.0").
func (v Version) Compare(w Version) int {
	n := len(v.release)
	if len(w.release) > n {
		n = len(w.release)
	}
	for i := 0; i < n; i++ {
		a, b := v.segment(i), w.segment(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (v Version) segment(i int) int64 {
	if i >= len(v.release) {
		return 0
	}
	return v.release[i]
}

// Equal reports whether v and w denote the same version.
func (v Version) Equal(w Version) bool { return v.Compare(w) == 0 }

// Less reports whether v sorts strictly before w.
func (v Version) Less(w Version) bool { return v.Compare(w) < 0 }

// next returns the smallest release tuple that sorts after every version
// starting with v's stored segments, by incrementing the last stored
// segment (3.7 becomes 3.8, 3.9.0 becomes 3.9.1). It is the exclusive upper
// bound of the prefix range "== v.*" and of the "~=" range.
func (v Version) next() Version {
	release := append([]int64(nil), v.release...)
	release[len(release)-1]++
	return Version{release: release}
}

func (v Version) String() string {
	parts := make([]string, len(v.release))
	for i, n := range v.release {
		parts[i] = strconv.FormatInt(n, 10)
	}
	return strings.Join(parts, ".")
}

// versionFromMajorMinor builds the release-only Version "major.minor".
func versionFromMajorMinor(major, minor int64) Version {
	return Version{release: []int64{major, minor}}
}
