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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// toNQuad serializes a single quad to its N-Quads line, terminated by " .\n".
func toNQuad(q *Quad, graphName string) string {
	s := q.Subject
	p := q.Predicate
	o := q.Object

	line := ""

	if IsIRI(s) {
		line += "<" + escape(s.GetValue()) + ">"
	} else {
		line += s.GetValue()
	}

	if IsIRI(p) {
		line += " <" + escape(p.GetValue()) + "> "
	} else {
		line += " " + escape(p.GetValue()) + " "
	}

	if IsIRI(o) {
		line += "<" + escape(o.GetValue()) + ">"
	} else if IsBlankNode(o) {
		line += o.GetValue()
	} else {
		literal := o.(*Literal)
		line += "\"" + escape(literal.GetValue()) + "\""
		if literal.Datatype == RDFLangString {
			line += "@" + literal.Language
		} else if literal.Datatype != XSDString {
			line += "^^<" + escape(literal.Datatype) + ">"
		}
	}

	if graphName != "" {
		if !strings.HasPrefix(graphName, "_:") {
			line += " <" + escape(graphName) + ">"
		} else {
			line += " " + graphName
		}
	}

	line += " .\n"

	return line
}

// unescape reverses the N-Quads string escapes in a single left-to-right
// pass, so an escaped backslash (\\) is consumed as a unit and its second
// backslash never pairs with the character after it: the escaped text \\n
// becomes a backslash followed by n, not a newline.
func unescape(str string) string {
	return strings.NewReplacer(
		"\\\\", "\\",
		"\\\"", "\"",
		"\\n", "\n",
		"\\r", "\r",
		"\\t", "\t",
	).Replace(str)
}

// escape is the inverse of unescape; \\ is escaped first so that the escapes
// it introduces for \n, \r, \t are not themselves re-escaped.
func escape(str string) string {
	str = strings.ReplaceAll(str, "\\", "\\\\")
	str = strings.ReplaceAll(str, "\"", "\\\"")
	str = strings.ReplaceAll(str, "\n", "\\n")
	str = strings.ReplaceAll(str, "\r", "\\r")
	str = strings.ReplaceAll(str, "\t", "\\t")
	return str
}

const (
	wso = "[ \\t]*"
	iri = "(?:<([^:]+:[^>]*)>)"

	// https://www.w3.org/TR/turtle/#grammar-production-BLANK_NODE_LABEL

	pnCharsBase = "A-Z" + "a-z" +
		"À-Ö" +
		"Ø-ö" +
		"ø-˿" +
		"Ͱ-ͽ" +
		"Ϳ-῿" +
		"‌-‍" +
		"⁰-↏" +
		"Ⰰ-⿯" +
		"、-퟿" +
		"豈-﷏" +
		"ﷰ-�"

	pnCharsU = pnCharsBase + "_"

	pnChars = pnCharsU +
		"0-9" +
		"-" +
		"·" +
		"̀-ͯ" +
		"‿-⁀"

	blankNodeLabel = "(_:" +
		"(?:[" + pnCharsU + "0-9])" +
		"(?:(?:[" + pnChars + ".])*(?:[" + pnChars + "]))?" +
		")"

	bnode = blankNodeLabel

	plain    = "\"([^\"\\\\]*(?:\\\\.[^\"\\\\]*)*)\""
	datatype = "(?:\\^\\^" + iri + ")"
	language = "(?:@([a-z]+(?:-[a-zA-Z0-9]+)*))"
	literal  = "(?:" + plain + "(?:" + datatype + "|" + language + ")?)"
	ws       = "[ \\t]+"

	subject  = "(?:" + iri + "|" + bnode + ")" + ws
	property = iri + ws
	object   = "(?:" + iri + "|" + bnode + "|" + literal + ")" + wso
	graph    = "(?:\\.|(?:(?:" + iri + "|" + bnode + ")" + wso + "\\.))"
)

var regexEmpty = regexp.MustCompile("^" + wso + "$")

var regexQuad = regexp.MustCompile("^" + wso + subject + property + object + graph + wso + "$") //nolint:gocritic

// ParseNQuads parses RDF in the form of N-Quads from a string into a
// Dataset. It fails with MalformedQuad on the first line that does not
// match the N-Quads grammar, carrying its 1-based line number.
func ParseNQuads(input string) (*Dataset, error) {
	dataset := NewDataset()

	scanner := bufio.NewScanner(strings.NewReader(input))

	lineNumber := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNumber++

		if regexEmpty.MatchString(line) {
			continue
		}

		match := regexQuad.FindStringSubmatch(line)
		if match == nil {
			return nil, NewError(MalformedQuad, &MalformedQuadDetails{Line: lineNumber, Text: line})
		}

		var subject Node
		if match[1] != "" {
			subject = NewIRI(unescape(match[1]))
		} else {
			subject = NewBlankNode(unescape(match[2]))
		}

		predicate := NewIRI(unescape(match[3]))

		var object Node
		if match[4] != "" {
			object = NewIRI(unescape(match[4]))
		} else if match[5] != "" {
			object = NewBlankNode(unescape(match[5]))
		} else {
			var datatype string
			var language string
			if match[7] != "" {
				datatype = unescape(match[7])
			} else if match[8] != "" {
				datatype = RDFLangString
				language = unescape(match[8])
			} else {
				datatype = XSDString
			}
			object = NewLiteral(unescape(match[6]), datatype, language)
		}

		name := DefaultGraph
		if match[9] != "" {
			name = unescape(match[9])
		} else if match[10] != "" {
			name = unescape(match[10])
		}

		dataset.AddTriple(name, NewQuad(subject, predicate, object, name))
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(IOError, err)
	}

	return dataset, nil
}

// SerializeDataset serializes a Dataset to its canonical N-Quads textual
// form: every quad serialized with its graph name, the resulting lines
// sorted lexicographically over code units, then concatenated.
func SerializeDataset(dataset *Dataset) (string, error) {
	var lines []string
	for graphName, triples := range dataset.Graphs {
		name := graphName
		if name == DefaultGraph {
			name = ""
		}
		for _, triple := range triples {
			lines = append(lines, toNQuad(triple, name))
		}
	}

	sortLines(lines)

	buf := bytes.NewBuffer(nil)
	for _, line := range lines {
		if _, err := fmt.Fprint(buf, line); err != nil {
			return "", NewError(IOError, err)
		}
	}
	return buf.String(), nil
}

// SerializeDatasetTo writes a Dataset's canonical N-Quads form to w.
func SerializeDatasetTo(w io.Writer, dataset *Dataset) error {
	out, err := SerializeDataset(dataset)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
