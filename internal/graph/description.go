package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// Description is one static graph: named nodes and named, directionally
// typed edges. Edge identifiers encode their endpoints and direction per
// ParseEdgeID; a dangling endpoint reference is permitted here and only
// rejected at upload time.
type Description struct {
	Nodes map[string]Node
	Edges map[string]Edge
}

// rawItem mirrors one node or edge entry in the input document.
type rawItem struct {
	Label      string         `json:"label" yaml:"label"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

type rawDescription struct {
	Nodes map[string]rawItem `json:"nodes" yaml:"nodes"`
	Edges map[string]rawItem `json:"edges" yaml:"edges"`
}

// DecodeJSON reads a JSON graph description. Unknown fields are rejected so
// a typo like "lable" fails loudly instead of producing an unlabeled item.
func DecodeJSON(r io.Reader) (*Description, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw rawDescription
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.DecodeError(err, "invalid JSON graph description")
	}
	return buildDescription(raw)
}

// DecodeYAML reads a YAML graph description with the same validation rules
// as DecodeJSON.
func DecodeYAML(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDescription
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.DecodeError(err, "invalid YAML graph description")
	}
	return buildDescription(raw)
}

// DecodeFile reads a graph description from disk, choosing the decoder by
// file extension (.yaml/.yml for YAML, anything else JSON).
func DecodeFile(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.DecodeError(err, fmt.Sprintf("cannot open graph description %s", path))
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return DecodeJSON(f)
	}
}

// buildDescription is the validating factory: every entry must carry a
// non-empty, splice-safe label, properties are optional.
func buildDescription(raw rawDescription) (*Description, error) {
	desc := &Description{
		Nodes: make(map[string]Node, len(raw.Nodes)),
		Edges: make(map[string]Edge, len(raw.Edges)),
	}

	for id, entry := range raw.Nodes {
		item, err := newItem("node", id, entry)
		if err != nil {
			return nil, err
		}
		desc.Nodes[id] = Node{Item: item}
	}
	for id, entry := range raw.Edges {
		item, err := newItem("edge", id, entry)
		if err != nil {
			return nil, err
		}
		desc.Edges[id] = Edge{Item: item}
	}

	return desc, nil
}

func newItem(kind, id string, entry rawItem) (Item, error) {
	if entry.Label == "" {
		return Item{}, errors.DecodeErrorf("%s %q: missing label", kind, id)
	}
	if !isValidIdentifier(entry.Label) {
		return Item{}, errors.DecodeErrorf("%s %q: invalid label %q (must match %s)",
			kind, id, entry.Label, identifierPattern.String())
	}
	props := entry.Properties
	if props == nil {
		props = map[string]any{}
	}
	return Item{Label: entry.Label, Properties: props}, nil
}

// NodeIDs returns all node ids in sorted order, for reproducible runs.
func (d *Description) NodeIDs() []string {
	ids := make([]string, 0, len(d.Nodes))
	for id := range d.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EdgeIDs returns all edge ids in sorted order.
func (d *Description) EdgeIDs() []string {
	ids := make([]string, 0, len(d.Edges))
	for id := range d.Edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
