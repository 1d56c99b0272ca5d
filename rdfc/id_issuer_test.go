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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuerIssuesMonotonically(t *testing.T) {
	iss := NewIssuer("_:c14n")

	assert.Equal(t, "_:c14n0", iss.Issue("_:a"))
	assert.Equal(t, "_:c14n1", iss.Issue("_:b"))
	// re-issuing the same old id returns the same new id
	assert.Equal(t, "_:c14n0", iss.Issue("_:a"))
	assert.Equal(t, []string{"_:a", "_:b"}, iss.Order())
}

func TestIssuerHas(t *testing.T) {
	iss := NewIssuer("_:c14n")
	require.False(t, iss.Has("_:a"))
	iss.Issue("_:a")
	require.True(t, iss.Has("_:a"))
}

func TestIssuerAnonymousDoesNotRecord(t *testing.T) {
	iss := NewIssuer("_:b")
	id1 := iss.IssueAnonymous()
	id2 := iss.IssueAnonymous()
	assert.NotEqual(t, id1, id2)
	assert.Empty(t, iss.Order())
}

func TestIssuerCloneIsIndependent(t *testing.T) {
	iss := NewIssuer("_:b")
	iss.Issue("_:a")

	clone := iss.Clone()
	clone.Issue("_:x")

	assert.True(t, clone.Has("_:x"))
	assert.False(t, iss.Has("_:x"))
	assert.Equal(t, []string{"_:a"}, iss.Order())
	assert.Equal(t, []string{"_:a", "_:x"}, clone.Order())
}
