package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphdesc/graphdesc/internal/errors"
)

func newNode(label string, props map[string]any) Node {
	return Node{Item: Item{Label: label, Properties: props}}
}

func newEdge(label string, props map[string]any) Edge {
	return Edge{Item: Item{Label: label, Properties: props}}
}

func TestNodeFragment(t *testing.T) {
	node := newNode("Person", map[string]any{"name": "alpha"})

	text, params, err := node.Fragment("n")
	require.NoError(t, err)
	assert.Equal(t, "(n: Person {name: $n_name})", text)
	assert.Equal(t, map[string]any{"n_name": "alpha"}, params)
}

func TestNodeFragment_DropsNullProperties(t *testing.T) {
	node := newNode("Person", map[string]any{
		"name":  "alpha",
		"score": 5,
		"note":  nil,
	})

	text, params, err := node.Fragment("n")
	require.NoError(t, err)

	// null keys must vanish from both the text and the parameters: the
	// store drops them at write time, so naming them later would make the
	// node unfindable
	assert.NotContains(t, text, "note")
	assert.NotContains(t, params, "n_note")
	assert.Equal(t, "(n: Person {name: $n_name, score: $n_score})", text)
	assert.Equal(t, map[string]any{"n_name": "alpha", "n_score": 5}, params)
}

func TestNodeFragment_EmptyProperties(t *testing.T) {
	text, params, err := newNode("Person", nil).Fragment("n")
	require.NoError(t, err)
	assert.Equal(t, "(n: Person {})", text)
	assert.Empty(t, params)
}

func TestNodeFragment_RoleNamespacing(t *testing.T) {
	node := newNode("Person", map[string]any{"name": "alpha"})

	_, p1, err := node.Fragment("n1")
	require.NoError(t, err)
	_, p2, err := node.Fragment("n2")
	require.NoError(t, err)

	// the same logical property under two roles must bind under distinct
	// parameter names so one combined statement never collides
	assert.Contains(t, p1, "n1_name")
	assert.Contains(t, p2, "n2_name")
	assert.NotContains(t, p1, "n2_name")
}

func TestEdgeFragment_Delimiters(t *testing.T) {
	text, _, err := newEdge("KNOWS", map[string]any{"since": 2009}).Fragment("e")
	require.NoError(t, err)
	assert.Equal(t, "[e: KNOWS {since: $e_since}]", text)
}

func TestFragment_InvalidLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{name: "empty", label: ""},
		{name: "spliced clause", label: "Person) RETURN (x"},
		{name: "leading digit", label: "1Person"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := newNode(tt.label, nil).Fragment("n")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeDecode))
		})
	}
}

func TestFragment_InvalidPropertyKey(t *testing.T) {
	node := newNode("Person", map[string]any{"bad key": "x"})
	_, _, err := node.Fragment("n")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeDecode))
}
