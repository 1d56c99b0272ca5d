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

const (
	RDFSyntaxNS string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNS       string = "http://www.w3.org/2001/XMLSchema#"

	XSDString string = XSDNS + "string"

	RDFLangString string = RDFSyntaxNS + "langString"
)

// DefaultGraph is the sentinel graph-name key denoting the default graph.
// It is distinct from any IRI or blank node label a dataset can carry.
const DefaultGraph = "@default"

// CanonicalPrefix is the label prefix shared by URDNA2015 and URGNA2012
// for canonical blank-node identifiers.
const CanonicalPrefix = "_:c14n"
