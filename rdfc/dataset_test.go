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

func TestNewQuadDefaultGraphIsNil(t *testing.T) {
	q := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")
	assert.Nil(t, q.Graph)

	q2 := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), DefaultGraph)
	assert.Nil(t, q2.Graph)
}

func TestNewQuadNamedGraph(t *testing.T) {
	q := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "http://example.com/g")
	require.NotNil(t, q.Graph)
	assert.True(t, IsIRI(q.Graph))

	qBlank := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "_:g")
	require.NotNil(t, qBlank.Graph)
	assert.True(t, IsBlankNode(qBlank.Graph))
}

func TestQuadEqual(t *testing.T) {
	a := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")
	b := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")
	c := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("different"), "")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestDatasetAddTripleDedups(t *testing.T) {
	ds := NewDataset()
	q1 := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")
	q2 := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")

	ds.AddTriple(DefaultGraph, q1)
	ds.AddTriple(DefaultGraph, q2)

	assert.Len(t, ds.GetQuads(DefaultGraph), 1)
}

func TestDatasetAddTripleCreatesGraph(t *testing.T) {
	ds := NewDataset()
	q := NewQuad(NewIRI("s"), NewIRI("p"), NewIRI("o"), "")
	ds.AddTriple("http://example.com/g", q)

	assert.Len(t, ds.GetQuads("http://example.com/g"), 1)
	assert.Empty(t, ds.GetQuads(DefaultGraph))
}

func TestDatasetGetQuadsMissingGraph(t *testing.T) {
	ds := NewDataset()
	assert.Nil(t, ds.GetQuads("http://example.com/nowhere"))
}
