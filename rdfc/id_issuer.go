// Copyright 2015-2017 Piprate Limited
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

package rdfc

import (
	"fmt"
)

// Issuer assigns stable, monotonically numbered replacement labels to
// input identifiers, remembering both the mapping and the order in which
// identifiers were issued. It is cheap to clone by value, which the
// N-degree search relies on to explore permutations speculatively.
type Issuer struct {
	prefix        string
	counter       int
	existing      map[string]string
	existingOrder []string
}

// NewIssuer creates and returns a new Issuer with the given label prefix.
func NewIssuer(prefix string) *Issuer {
	return &Issuer{
		prefix:        prefix,
		counter:       0,
		existing:      make(map[string]string),
		existingOrder: make([]string, 0),
	}
}

// Clone returns an independent copy of this Issuer. Mutating the clone
// never affects the original, and vice versa.
func (iss *Issuer) Clone() *Issuer {
	cp := &Issuer{
		prefix:        iss.prefix,
		counter:       iss.counter,
		existing:      make(map[string]string, len(iss.existing)),
		existingOrder: make([]string, len(iss.existingOrder)),
	}
	copy(cp.existingOrder, iss.existingOrder)
	for k, v := range iss.existing {
		cp.existing[k] = v
	}

	return cp
}

// Issue returns the replacement identifier for old, issuing and recording
// a new one if old has not been seen before.
func (iss *Issuer) Issue(old string) string {
	if ex, present := iss.existing[old]; present {
		return ex
	}

	id := iss.prefix + fmt.Sprintf("%d", iss.counter)
	iss.counter++

	iss.existing[old] = id
	iss.existingOrder = append(iss.existingOrder, old)

	return id
}

// IssueAnonymous returns a fresh identifier without recording a mapping
// for it, for callers that need a unique label but nothing to look it up
// by later.
func (iss *Issuer) IssueAnonymous() string {
	id := iss.prefix + fmt.Sprintf("%d", iss.counter)
	iss.counter++
	return id
}

// Has returns true if old has already been issued a replacement identifier.
func (iss *Issuer) Has(old string) bool {
	_, present := iss.existing[old]
	return present
}

// Order returns the old identifiers in the order they were issued, used to
// replay issuance onto another issuer deterministically.
func (iss *Issuer) Order() []string {
	return iss.existingOrder
}
