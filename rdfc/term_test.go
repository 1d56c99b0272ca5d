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
)

func TestLiteralDefaultsToXSDString(t *testing.T) {
	l := NewLiteral("hello", "", "")
	assert.Equal(t, XSDString, l.Datatype)
}

func TestLiteralEquality(t *testing.T) {
	a := NewLiteral("v", XSDString, "")
	b := NewLiteral("v", XSDString, "")
	c := NewLiteral("v", RDFLangString, "en")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewIRI("v")))
}

func TestIRIEquality(t *testing.T) {
	a := NewIRI("http://example.com/a")
	b := NewIRI("http://example.com/a")
	c := NewIRI("http://example.com/b")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBlankNodeEquality(t *testing.T) {
	a := NewBlankNode("_:b0")
	b := NewBlankNode("_:b0")
	c := NewBlankNode("_:b1")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNodeKindPredicates(t *testing.T) {
	iri := NewIRI("http://example.com/a")
	bnode := NewBlankNode("_:b0")
	lit := NewLiteral("v", "", "")

	assert.True(t, IsIRI(iri))
	assert.False(t, IsIRI(bnode))

	assert.True(t, IsBlankNode(bnode))
	assert.False(t, IsBlankNode(lit))

	assert.True(t, IsLiteral(lit))
	assert.False(t, IsLiteral(iri))
}
