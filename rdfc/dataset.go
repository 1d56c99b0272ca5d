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
	"strings"
)

// Quad represents an RDF quad: a subject/predicate/object triple plus an
// optional graph name. Graph is nil for triples belonging to the default
// graph.
type Quad struct {
	Subject   Node
	Predicate Node
	Object    Node
	Graph     Node
}

// NewQuad creates a new Quad. An empty or "@default" graph name denotes the
// default graph and leaves Graph nil.
func NewQuad(subject Node, predicate Node, object Node, graph string) *Quad {
	q := &Quad{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}

	if graph != "" && graph != DefaultGraph {
		if strings.HasPrefix(graph, "_:") {
			q.Graph = NewBlankNode(graph)
		} else {
			q.Graph = NewIRI(graph)
		}
	}
	return q
}

// Equal returns true if this quad is equal to the given quad: same kind and
// value on every component, including graph name.
func (q *Quad) Equal(o *Quad) bool {
	if o == nil {
		return false
	}

	if (q.Graph != nil && !q.Graph.Equal(o.Graph)) || (q.Graph == nil && o.Graph != nil) {
		return false
	}

	return q.Subject.Equal(o.Subject) && q.Predicate.Equal(o.Predicate) && q.Object.Equal(o.Object)
}

// Dataset is a mapping from graph-name key to a sequence of triples. The
// default graph uses the DefaultGraph sentinel key.
type Dataset struct {
	Graphs map[string][]*Quad
}

// NewDataset creates a new, empty Dataset with an initialized default graph.
func NewDataset() *Dataset {
	ds := &Dataset{
		Graphs: make(map[string][]*Quad),
	}
	ds.Graphs[DefaultGraph] = make([]*Quad, 0)
	return ds
}

// GetQuads returns the triples recorded under the given graph name.
func (ds *Dataset) GetQuads(graphName string) []*Quad {
	return ds.Graphs[graphName]
}

// AddTriple appends triple to the named graph, creating the graph if
// necessary, and skips it if an equal triple is already present in that
// graph (spec invariant: triples are deduplicated within a graph).
func (ds *Dataset) AddTriple(graphName string, triple *Quad) {
	triples, present := ds.Graphs[graphName]
	if !present {
		ds.Graphs[graphName] = []*Quad{triple}
		return
	}

	for _, existing := range triples {
		if triple.Equal(existing) {
			return
		}
	}
	ds.Graphs[graphName] = append(triples, triple)
}
