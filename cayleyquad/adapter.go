// Package cayleyquad converts between this module's Dataset and the
// quad.Quad model used by github.com/cayleygraph/cayley, a graph database
// whose own dependency on github.com/piprate/json-gold exists for exactly
// this kind of round-trip (see query/linkedql in the cayley source tree,
// which shuttles RDF terms between ld.Quad and quad.Quad). A caller storing
// canonicalized data in a cayley-backed quad store, or pulling cayley data
// through this package's canonicalization, uses these two functions as the
// boundary.
package cayleyquad

import (
	"github.com/cayleygraph/quad"

	"github.com/quadhash/rdfc/rdfc"
)

// ToCayleyQuads converts a Dataset into a flat list of quad.Quad, one per
// triple, each carrying its graph name in Label (nil for the default
// graph). Graph iteration order is not significant to either side; the
// caller sorts or canonicalizes downstream as needed.
func ToCayleyQuads(dataset *rdfc.Dataset) []quad.Quad {
	var out []quad.Quad
	for graphName, triples := range dataset.Graphs {
		label := graphLabel(graphName)
		for _, t := range triples {
			out = append(out, quad.Quad{
				Subject:   nodeToValue(t.Subject),
				Predicate: nodeToValue(t.Predicate),
				Object:    nodeToValue(t.Object),
				Label:     label,
			})
		}
	}
	return out
}

// FromCayleyQuads builds a Dataset from a list of quad.Quad, grouping by
// Label into graphs (nil Label goes to the default graph) and deduplicating
// triples within each graph per the Dataset invariant.
func FromCayleyQuads(quads []quad.Quad) *rdfc.Dataset {
	dataset := rdfc.NewDataset()
	for _, q := range quads {
		graphName := rdfc.DefaultGraph
		if q.Label != nil {
			switch label := q.Label.(type) {
			case quad.IRI:
				graphName = string(label)
			case quad.BNode:
				graphName = "_:" + string(label)
			default:
				graphName = label.String()
			}
		}

		triple := &rdfc.Quad{
			Subject:   valueToNode(q.Subject),
			Predicate: valueToNode(q.Predicate),
			Object:    valueToNode(q.Object),
		}
		dataset.AddTriple(graphName, triple)
	}
	return dataset
}

func graphLabel(graphName string) quad.Value {
	if graphName == rdfc.DefaultGraph || graphName == "" {
		return nil
	}
	if len(graphName) >= 2 && graphName[:2] == "_:" {
		return quad.BNode(graphName[2:])
	}
	return quad.IRI(graphName)
}

func nodeToValue(n rdfc.Node) quad.Value {
	switch v := n.(type) {
	case *rdfc.IRI:
		return quad.IRI(v.Value)
	case *rdfc.BlankNode:
		label := v.Attribute
		if len(label) >= 2 && label[:2] == "_:" {
			label = label[2:]
		}
		return quad.BNode(label)
	case *rdfc.Literal:
		if v.Datatype == rdfc.RDFLangString && v.Language != "" {
			return quad.LangString{Value: quad.String(v.Value), Lang: v.Language}
		}
		if v.Datatype != "" && v.Datatype != rdfc.XSDString {
			return quad.TypedString{Value: quad.String(v.Value), Type: quad.IRI(v.Datatype)}
		}
		return quad.String(v.Value)
	default:
		return nil
	}
}

func valueToNode(v quad.Value) rdfc.Node {
	switch val := v.(type) {
	case quad.IRI:
		return rdfc.NewIRI(string(val))
	case quad.BNode:
		return rdfc.NewBlankNode("_:" + string(val))
	case quad.String:
		return rdfc.NewLiteral(string(val), rdfc.XSDString, "")
	case quad.LangString:
		return rdfc.NewLiteral(string(val.Value), rdfc.RDFLangString, val.Lang)
	case quad.TypedString:
		return rdfc.NewLiteral(string(val.Value), string(val.Type), "")
	default:
		return rdfc.NewLiteral(v.String(), rdfc.XSDString, "")
	}
}
