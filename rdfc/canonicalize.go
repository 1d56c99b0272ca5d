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
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	hashPkg "hash"
	"sort"
	"strings"
)

// Algorithm selects which RDF Dataset Canonicalization variant to run.
type Algorithm string

const (
	AlgorithmURDNA2015 Algorithm = "URDNA2015"
	AlgorithmURGNA2012 Algorithm = "URGNA2012"
)

// Options configures a Canonicalize call.
type Options struct {
	// Algorithm selects URDNA2015 or URGNA2012. Required; any other
	// value fails with UnknownAlgorithm.
	Algorithm Algorithm

	// Format, if non-empty, must be "application/n-quads" or its alias
	// "application/nquads". When set, Canonicalize returns the joined
	// N-Quads string instead of a parsed *Dataset.
	Format string
}

// positions holds the URDNA2015 component order used when building the
// hash-to-related-blank-nodes map: subject, object, graph name.
var positions = []string{"s", "o", "g"}

// Canonicalize runs the RDF Dataset Canonicalization algorithm selected by
// opts.Algorithm over dataset, returning either the canonical N-Quads
// string (when opts.Format is set) or the canonicalized *Dataset.
func Canonicalize(dataset *Dataset, opts Options) (interface{}, error) {
	if opts.Algorithm != AlgorithmURDNA2015 && opts.Algorithm != AlgorithmURGNA2012 {
		return nil, NewError(UnknownAlgorithm, string(opts.Algorithm))
	}
	if opts.Format != "" && opts.Format != "application/n-quads" && opts.Format != "application/nquads" {
		return nil, NewError(UnknownFormat, opts.Format)
	}

	c := newCanonicalizer(opts.Algorithm)
	c.run(dataset)

	if opts.Format != "" {
		rval := ""
		for _, n := range c.lines {
			rval += n
		}
		return rval, nil
	}

	var rval []byte
	for _, n := range c.lines {
		rval = append(rval, []byte(n)...)
	}
	return ParseNQuads(string(rval))
}

// Digest canonicalizes dataset under algorithm and returns the lowercase
// hex digest of the canonical N-Quads form, using the hash function the
// algorithm specifies for its own internal hashing (SHA-256 for
// URDNA2015, SHA-1 for URGNA2012). This is the convenience callers
// building stable hashes or signatures over RDF data actually want on top
// of canonicalization.
func Digest(dataset *Dataset, algorithm Algorithm) (string, error) {
	out, err := Canonicalize(dataset, Options{Algorithm: algorithm, Format: "application/n-quads"})
	if err != nil {
		return "", err
	}
	canonical := out.(string)

	var h hashPkg.Hash
	switch algorithm {
	case AlgorithmURDNA2015:
		h = sha256.New()
	case AlgorithmURGNA2012:
		h = sha1.New() //nolint:gosec
	default:
		return "", NewError(UnknownAlgorithm, string(algorithm))
	}
	h.Write([]byte(canonical))
	return encodeHex(h.Sum(nil)), nil
}

// canonicalizer holds the per-invocation state of the simple-labeling loop
// and N-degree permutation search. A fresh instance is created for every
// Canonicalize call; nothing here is shared across concurrent invocations.
type canonicalizer struct {
	blankNodeInfo    map[string]*blankNodeEntry
	hashToBlankNodes map[string][]string
	canonicalIssuer  *Issuer
	quads            []*Quad
	lines            []string
	algorithm        Algorithm
}

type blankNodeEntry struct {
	quads []*Quad
	hash  string
	// hashSet records whether hash has been computed, so the cache check
	// does not depend on the zero value of hash.
	hashSet bool
}

func newCanonicalizer(algorithm Algorithm) *canonicalizer {
	return &canonicalizer{
		blankNodeInfo:   make(map[string]*blankNodeEntry),
		canonicalIssuer: NewIssuer(CanonicalPrefix),
		quads:           make([]*Quad, 0),
		algorithm:       algorithm,
	}
}

// run executes §4.6 of the canonicalization driver end to end, leaving the
// canonical, sorted N-Quads lines in c.lines.
func (c *canonicalizer) run(dataset *Dataset) {
	// 1-2) Ingest the dataset, attaching graph names and indexing blank
	// nodes by the quads that mention them.
	for graphName, triples := range dataset.Graphs {
		name := graphName
		if name == DefaultGraph {
			name = ""
		}
		for _, triple := range triples {
			quad := triple
			if name != "" {
				if strings.HasPrefix(name, "_:") {
					quad = &Quad{Subject: triple.Subject, Predicate: triple.Predicate, Object: triple.Object, Graph: NewBlankNode(name)}
				} else {
					quad = &Quad{Subject: triple.Subject, Predicate: triple.Predicate, Object: triple.Object, Graph: NewIRI(name)}
				}
			}

			c.quads = append(c.quads, quad)

			for _, attrNode := range []Node{quad.Subject, quad.Object, quad.Graph} {
				if attrNode != nil && IsBlankNode(attrNode) {
					id := attrNode.GetValue()
					entry, hasID := c.blankNodeInfo[id]
					if !hasID {
						entry = &blankNodeEntry{}
						c.blankNodeInfo[id] = entry
					}
					entry.quads = append(entry.quads, quad)
				}
			}
		}
	}

	// 3) Non-normalized blank node identifiers.
	nonNormalized := make(map[string]bool, len(c.blankNodeInfo))
	for id := range c.blankNodeInfo {
		nonNormalized[id] = true
	}

	// 4-5) Simple labeling loop.
	simple := true
	for simple {
		simple = false
		c.hashToBlankNodes = make(map[string][]string)

		for id := range nonNormalized {
			hash := c.hashFirstDegreeQuads(id)
			c.hashToBlankNodes[hash] = append(c.hashToBlankNodes[hash], id)
		}

		for _, hash := range sortedKeys(c.hashToBlankNodes) {
			idList := c.hashToBlankNodes[hash]
			if len(idList) > 1 {
				continue
			}

			id := idList[0]
			c.canonicalIssuer.Issue(id)
			delete(nonNormalized, id)
			delete(c.hashToBlankNodes, hash)
			simple = true
		}
	}

	// 6) N-degree labeling for the remaining ambiguous buckets.
	for _, hash := range sortedKeys(c.hashToBlankNodes) {
		idList := c.hashToBlankNodes[hash]

		hashPaths := make(map[string][]*Issuer)
		for _, id := range idList {
			if c.canonicalIssuer.Has(id) {
				continue
			}

			issuer := NewIssuer("_:b")
			issuer.Issue(id)

			ndHash, newIssuer := c.hashNDegreeQuads(id, issuer)
			hashPaths[ndHash] = append(hashPaths[ndHash], newIssuer)
		}

		for _, h := range sortedIssuerKeys(hashPaths) {
			for _, resultIssuer := range hashPaths[h] {
				for _, existing := range resultIssuer.Order() {
					c.canonicalIssuer.Issue(existing)
				}
			}
		}
	}

	// 7) Rewrite every quad's blank-node components with their canonical
	// labels, serialize, and sort.
	c.lines = make([]string, len(c.quads))
	for i, quad := range c.quads {
		for _, attrNode := range []Node{quad.Subject, quad.Object, quad.Graph} {
			if attrNode == nil || !IsBlankNode(attrNode) {
				continue
			}
			attrValue := attrNode.GetValue()
			if !strings.HasPrefix(attrValue, CanonicalPrefix) {
				bn := attrNode.(*BlankNode)
				bn.Attribute = c.canonicalIssuer.Issue(attrValue)
			}
		}

		name := ""
		if quad.Graph != nil {
			name = quad.Graph.GetValue()
		}
		c.lines[i] = toNQuad(quad, name)
	}

	sortLines(c.lines)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedIssuerKeys(m map[string][]*Issuer) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortLines(lines []string) {
	sort.Strings(lines)
}

// hashFirstDegreeQuads implements §4.3: a hash over the quads mentioning id,
// with id's own occurrences masked to _:a and every other blank node masked
// to _:z (and, under URGNA2012, every graph-name blank node masked to _:g
// regardless of equality to id).
func (c *canonicalizer) hashFirstDegreeQuads(id string) string {
	entry := c.blankNodeInfo[id]
	if entry.hashSet {
		return entry.hash
	}

	nquads := make([]string, 0, len(entry.quads))
	for _, quad := range entry.quads {
		graphCopy := c.modifyFirstDegreeComponent(id, quad.Graph, true)
		var name string
		if graphCopy != nil {
			name = graphCopy.GetValue()
		}

		quadCopy := &Quad{
			Subject:   c.modifyFirstDegreeComponent(id, quad.Subject, false),
			Predicate: quad.Predicate,
			Object:    c.modifyFirstDegreeComponent(id, quad.Object, false),
			Graph:     graphCopy,
		}

		nquads = append(nquads, toNQuad(quadCopy, name))
	}

	sort.Strings(nquads)

	hash := c.hashNQuads(nquads)
	entry.hash = hash
	entry.hashSet = true
	return hash
}

func (c *canonicalizer) modifyFirstDegreeComponent(id string, component Node, isGraph bool) Node {
	if !IsBlankNode(component) {
		return component
	}

	var val string
	if c.algorithm == AlgorithmURDNA2015 {
		if component.GetValue() == id {
			val = "_:a"
		} else {
			val = "_:z"
		}
	} else if isGraph {
		val = "_:g"
	} else if component.GetValue() == id {
		val = "_:a"
	} else {
		val = "_:z"
	}
	return NewBlankNode(val)
}

// hashRelatedBlankNode implements §4.4.
func (c *canonicalizer) hashRelatedBlankNode(related string, quad *Quad, issuer *Issuer, position string) string {
	var id string
	if c.canonicalIssuer.Has(related) {
		id = c.canonicalIssuer.Issue(related)
	} else if issuer.Has(related) {
		id = issuer.Issue(related)
	} else {
		id = c.hashFirstDegreeQuads(related)
	}

	md := c.createHash()
	md.Write([]byte(position))

	if position != "g" {
		md.Write([]byte(c.getRelatedPredicate(quad)))
	}

	md.Write([]byte(id))

	return encodeHex(md.Sum(nil))
}

// hashNDegreeQuads implements §4.5: recursively characterizes id's entire
// connected blank-node neighborhood, breaking symmetry via the
// lexicographically minimal exploration path.
func (c *canonicalizer) hashNDegreeQuads(id string, issuer *Issuer) (string, *Issuer) {
	hashToRelated := c.createHashToRelated(id, issuer)

	md := c.createHash()

	for _, hash := range sortedKeys(hashToRelated) {
		blankNodes := hashToRelated[hash]

		md.Write([]byte(hash))

		chosenPath := ""
		var chosenIssuer *Issuer

		permutator := NewPermutator(blankNodes)
		for permutator.HasNext() {
			permutation := permutator.Next()

			issuerCopy := issuer.Clone()
			path := ""
			recursionList := make([]string, 0)
			skip := false

			for _, related := range permutation {
				if c.canonicalIssuer.Has(related) {
					path += c.canonicalIssuer.Issue(related)
				} else {
					if !issuerCopy.Has(related) {
						recursionList = append(recursionList, related)
					}
					path += issuerCopy.Issue(related)
				}

				if len(chosenPath) != 0 && len(path) >= len(chosenPath) && path > chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			for _, related := range recursionList {
				resultHash, resultIssuer := c.hashNDegreeQuads(related, issuerCopy)

				path += issuerCopy.Issue(related)
				path += "<" + resultHash + ">"

				issuerCopy = resultIssuer

				if len(chosenPath) != 0 && len(path) >= len(chosenPath) && path > chosenPath {
					skip = true
					break
				}
			}

			if skip {
				continue
			}

			if len(chosenPath) == 0 || path < chosenPath {
				chosenPath = path
				chosenIssuer = issuerCopy
			}
		}

		md.Write([]byte(chosenPath))
		issuer = chosenIssuer
	}

	return encodeHex(md.Sum(nil)), issuer
}

func (c *canonicalizer) createHash() hashPkg.Hash {
	if c.algorithm == AlgorithmURDNA2015 {
		return sha256.New()
	}
	return sha1.New() //nolint:gosec
}

func (c *canonicalizer) hashNQuads(nquads []string) string {
	h := c.createHash()
	for _, nquad := range nquads {
		h.Write([]byte(nquad))
	}
	return encodeHex(h.Sum(nil))
}

func (c *canonicalizer) getRelatedPredicate(quad *Quad) string {
	if c.algorithm == AlgorithmURDNA2015 {
		return "<" + quad.Predicate.GetValue() + ">"
	}
	return quad.Predicate.GetValue()
}

// createHashToRelated implements the bucket-building half of §4.5: for
// URDNA2015 every blank-node component (subject, object, graph) other than
// id contributes; for URGNA2012 only the first of subject-then-object that
// is a blank node different from id contributes ("first match wins", per
// the 2012 spec).
func (c *canonicalizer) createHashToRelated(id string, issuer *Issuer) map[string][]string {
	hashToRelated := make(map[string][]string)

	quads := c.blankNodeInfo[id].quads

	if c.algorithm == AlgorithmURDNA2015 {
		for _, quad := range quads {
			for i, attrNode := range []Node{quad.Subject, quad.Object, quad.Graph} {
				if attrNode == nil || !IsBlankNode(attrNode) {
					continue
				}
				related := attrNode.GetValue()
				if related == id {
					continue
				}
				position := positions[i]
				hash := c.hashRelatedBlankNode(related, quad, issuer, position)
				hashToRelated[hash] = append(hashToRelated[hash], related)
			}
		}
		return hashToRelated
	}

	for _, quad := range quads {
		var related, position string
		if IsBlankNode(quad.Subject) && quad.Subject.GetValue() != id {
			related = quad.Subject.GetValue()
			position = "p"
		} else if IsBlankNode(quad.Object) && quad.Object.GetValue() != id {
			related = quad.Object.GetValue()
			position = "r"
		} else {
			continue
		}

		hash := c.hashRelatedBlankNode(related, quad, issuer, position)
		hashToRelated[hash] = append(hashToRelated[hash], related)
	}
	return hashToRelated
}

const hexDigit = "0123456789abcdef"

func encodeHex(data []byte) string {
	buf := make([]byte, 0, len(data)*2)
	for _, b := range data {
		buf = append(buf, hexDigit[b>>4], hexDigit[b&0xf])
	}
	return string(buf)
}

// Permutator enumerates every permutation of a list of strings exactly
// once, using the Steinhaus-Johnson-Trotter algorithm starting from the
// sorted sequence. Enumeration order does not affect correctness: the
// N-degree hasher selects by lexicographic minimum of the emitted path,
// not by visitation order.
type Permutator struct {
	list []string
	done bool
	left map[string]bool
}

// NewPermutator creates a new Permutator over list.
func NewPermutator(list []string) *Permutator {
	p := &Permutator{
		list: make([]string, len(list)),
		left: make(map[string]bool, len(list)),
	}
	copy(p.list, list)
	sort.Strings(p.list)
	for _, v := range p.list {
		p.left[v] = true
	}
	return p
}

// HasNext returns true if there is another permutation.
func (p *Permutator) HasNext() bool {
	return !p.done
}

// Next returns the next permutation. Call HasNext first to ensure there is
// one.
func (p *Permutator) Next() []string {
	rval := make([]string, len(p.list))
	copy(rval, p.list)

	k := ""
	pos := 0
	length := len(p.list)
	for i := 0; i < length; i++ {
		element := p.list[i]
		left := p.left[element]
		if (k == "" || element > k) &&
			((left && i > 0 && element > p.list[i-1]) || (!left && i < (length-1) && element > p.list[i+1])) {
			k = element
			pos = i
		}
	}

	if k == "" {
		p.done = true
	} else {
		var swap int
		if p.left[k] {
			swap = pos - 1
		} else {
			swap = pos + 1
		}
		p.list[pos], p.list[swap] = p.list[swap], p.list[pos]

		for i := 0; i < length; i++ {
			if p.list[i] > k {
				p.left[p.list[i]] = !p.left[p.list[i]]
			}
		}
	}

	return rval
}
