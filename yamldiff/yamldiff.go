// Package yamldiff compares two YAML (or JSON) documents structurally by
// parsing each into an order-preserving node tree and running the core
// differ over the two trees.
//
// Mapping entries keep their document order and are compared positionally,
// the same way sequences are. Reordering keys therefore reads as a
// divergence: this package is meant for reconciling documents that are
// supposed to be byte-for-byte structurally aligned, such as snapshots or
// exports produced by the same writer.
package yamldiff

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/deepdiff/diff"
)

// ErrMalformedDocument is returned when an input cannot be parsed.
var ErrMalformedDocument = errors.New("malformed document")

// Node is an order-preserving view of one parsed document node. Tag is the
// resolved YAML tag (e.g. "!!str", "!!int"), Value the scalar text when the
// node is a scalar, and Children the node's content in document order:
// sequence elements for sequences, alternating key/value nodes for mappings.
type Node struct {
	Tag      string
	Value    string
	Children []Node
}

// Parse decodes a YAML or JSON document into its Node tree.
func Parse(doc []byte) (Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return Node{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return convert(&root), nil
}

// Compare parses both documents and reports every structural divergence
// between them. The boolean is true iff the documents are equal; the
// divergence slice is in depth-first discovery order. Parse failures are
// returned as errors wrapping ErrMalformedDocument and produce no results.
func Compare(left, right []byte) (bool, []diff.Divergence, error) {
	leftRoot, err := Parse(left)
	if err != nil {
		return false, nil, fmt.Errorf("left document: %w", err)
	}

	rightRoot, err := Parse(right)
	if err != nil {
		return false, nil, fmt.Errorf("right document: %w", err)
	}

	equal, results := diff.Compare(leftRoot, rightRoot)

	return equal, results, nil
}

func convert(n *yaml.Node) Node {
	node := Node{Tag: n.Tag, Value: n.Value}

	for _, child := range n.Content {
		node.Children = append(node.Children, convert(child))
	}

	return node
}
