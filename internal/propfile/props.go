package propfile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eykd/dslint-go/internal/domain"
)

// ErrNotMapping is returned when a prop document is not a key/value mapping.
var ErrNotMapping = errors.New("props must be a mapping")

// ErrMalformedAssignment is returned for a command-line prop that is not of
// the form key=value.
var ErrMalformedAssignment = errors.New("malformed prop assignment")

// ParseProps decodes a YAML (or JSON) mapping into a prop bag. Scalars keep
// their literal text, so `size: 2` yields the string "2" just as the markup
// attribute size="2" would. Null values are dropped. The document is checked
// against the prop bag schema before conversion.
func ParseProps(text string) (domain.PropBag, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("decoding props: %w", err)
	}
	if len(doc.Content) == 0 {
		return domain.PropBag{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	// The converted tree has string keys at every level, which the schema
	// loader needs to marshal it.
	tree, err := nodeValue(root)
	if err != nil {
		return nil, fmt.Errorf("decoding props: %w", err)
	}
	if err := validateSchema(tree); err != nil {
		return nil, err
	}

	bag := domain.PropBag{}
	for key, v := range tree.(map[string]any) {
		if v != nil {
			bag[key] = v
		}
	}
	return bag, nil
}

// nodeValue converts a YAML node into a plain Go value, keeping scalars as
// their source text.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	case yaml.SequenceNode:
		s := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := nodeValue(c)
			if err != nil {
				return nil, err
			}
			s = append(s, v)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}

// ParseAssignments builds a prop bag from key=value arguments. A later
// assignment to the same key wins.
func ParseAssignments(args []string) (domain.PropBag, error) {
	bag := domain.PropBag{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAssignment, arg)
		}
		bag[key] = value
	}
	return bag, nil
}
