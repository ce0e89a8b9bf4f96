package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphdesc/graphdesc/internal/errors"
)

func TestDecodeJSON(t *testing.T) {
	doc := `{
		"nodes": {
			"A": {"label": "Person", "properties": {"name": "A"}},
			"B": {"label": "Person"}
		},
		"edges": {
			"A->B": {"label": "KNOWS", "properties": {"since": 2009}}
		}
	}`

	desc, err := DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, desc.Nodes, 2)
	require.Len(t, desc.Edges, 1)
	assert.Equal(t, "Person", desc.Nodes["A"].Label)
	assert.Equal(t, map[string]any{"name": "A"}, desc.Nodes["A"].Properties)
	// omitted properties come back as an empty map, never nil
	assert.NotNil(t, desc.Nodes["B"].Properties)
	assert.Equal(t, "KNOWS", desc.Edges["A->B"].Label)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "missing label", doc: `{"nodes": {"A": {"properties": {}}}}`},
		{name: "empty label", doc: `{"nodes": {"A": {"label": ""}}}`},
		{name: "unsafe label", doc: `{"nodes": {"A": {"label": "Person) DELETE (n"}}}`},
		{name: "unknown field", doc: `{"nodes": {"A": {"lable": "Person"}}}`},
		{name: "not json", doc: `nodes: {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeDecode))
		})
	}
}

// A dangling endpoint reference is legal in the description itself; the
// cross-reference invariant is enforced at upload time, not here.
func TestDecodeJSON_AllowsDanglingEdgeReference(t *testing.T) {
	doc := `{
		"nodes": {"A": {"label": "Person"}},
		"edges": {"A->Z": {"label": "KNOWS"}}
	}`

	desc, err := DecodeJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, desc.Edges, 1)
}

func TestDecodeYAML(t *testing.T) {
	doc := `
nodes:
  A:
    label: Person
    properties:
      name: A
edges:
  A->A:
    label: LIKES
`
	desc, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Person", desc.Nodes["A"].Label)
	assert.Equal(t, "LIKES", desc.Edges["A->A"].Label)
}

func TestDecodeYAML_UnknownField(t *testing.T) {
	doc := `
nodes:
  A:
    label: Person
    lable: typo
`
	_, err := DecodeYAML(strings.NewReader(doc))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeDecode))
}

func TestDescription_SortedIDs(t *testing.T) {
	desc := &Description{
		Nodes: map[string]Node{
			"b": newNode("N", nil),
			"a": newNode("N", nil),
			"c": newNode("N", nil),
		},
		Edges: map[string]Edge{
			"b->c": newEdge("E", nil),
			"a->b": newEdge("E", nil),
		},
	}

	assert.Equal(t, []string{"a", "b", "c"}, desc.NodeIDs())
	assert.Equal(t, []string{"a->b", "b->c"}, desc.EdgeIDs())
}
