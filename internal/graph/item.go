package graph

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// identifierPattern is the Cypher naming rule for labels and property keys.
// Values never need it (they are always bound as parameters), but labels and
// keys are spliced into statement text and must be validated first.
// Reference: https://neo4j.com/docs/cypher-manual/current/syntax/naming/
var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func isValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Item is the shared core of nodes and edges: a label plus arbitrary
// key/value properties. Items are built once from the parsed description
// and never mutated during an upload run.
type Item struct {
	Label      string
	Properties map[string]any
}

// fragment renders the item as a Cypher pattern body between the given
// delimiters, e.g. "(n1: Person {name: $n1_name})".
//
// Neo4j silently drops null-valued properties at write time, so a node
// created with {prop: null} has no such property afterwards. A later
// MATCH naming that key would never succeed. Null-valued keys are
// therefore excluded here, from both the text and the bound parameters,
// which keeps the creation and match representations identical.
func (it Item) fragment(role, opening, closing string) (string, map[string]any, error) {
	if !isValidIdentifier(it.Label) {
		return "", nil, errors.DecodeErrorf("invalid label %q (must match %s)", it.Label, identifierPattern.String())
	}

	keys := make([]string, 0, len(it.Properties))
	for k, v := range it.Properties {
		if v == nil {
			continue
		}
		if !isValidIdentifier(k) {
			return "", nil, errors.DecodeErrorf("invalid property key %q (must match %s)", k, identifierPattern.String())
		}
		keys = append(keys, k)
	}
	// Go maps are unordered; the emitted text and the parameter map only
	// have to agree with each other, but a sorted order also makes
	// statements reproducible across runs.
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	params := make(map[string]any, len(keys))
	for i, k := range keys {
		name := role + "_" + k
		pairs[i] = fmt.Sprintf("%s: $%s", k, name)
		params[name] = it.Properties[k]
	}

	text := opening + role + ": " + it.Label + " {" + strings.Join(pairs, ", ") + "}" + closing
	return text, params, nil
}

// Node is a labeled vertex in the description.
type Node struct {
	Item
}

// Fragment renders the node as a Cypher node pattern under the given role
// identifier. Parameters are namespaced "{role}_{key}" so two roles for the
// same logical item in one statement never collide.
func (n Node) Fragment(role string) (string, map[string]any, error) {
	return n.fragment(role, "(", ")")
}

// Edge is a labeled, directed relationship. Its endpoints and direction are
// not stored here: they are encoded in the edge's identifier within the
// description and resolved at upload time.
type Edge struct {
	Item
}

// Fragment renders the edge as a Cypher relationship pattern under the
// given role identifier.
func (e Edge) Fragment(role string) (string, map[string]any, error) {
	return e.fragment(role, "[", "]")
}
