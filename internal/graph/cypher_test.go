package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNode(t *testing.T) {
	stmt, err := CreateNode(newNode("Person", map[string]any{"name": "alpha"}))
	require.NoError(t, err)
	assert.Equal(t, "CREATE (n: Person {name: $n_name})", stmt.Query)
	assert.Equal(t, map[string]any{"n_name": "alpha"}, stmt.Params)
}

func TestCreateEdge_Directions(t *testing.T) {
	left := newNode("Person", map[string]any{"name": "A"})
	right := newNode("Person", map[string]any{"name": "B"})
	edge := newEdge("KNOWS", nil)

	tests := []struct {
		name string
		dir  Direction
		want string
	}{
		{
			name: "right draws the arrow into n2",
			dir:  DirectionRight,
			want: "MATCH (n1: Person {name: $n1_name}) MATCH (n2: Person {name: $n2_name}) CREATE (n1)-[e: KNOWS {}]->(n2)",
		},
		{
			name: "left draws the arrow into n1",
			dir:  DirectionLeft,
			want: "MATCH (n1: Person {name: $n1_name}) MATCH (n2: Person {name: $n2_name}) CREATE (n1)<-[e: KNOWS {}]-(n2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := CreateEdge(left, right, edge, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stmt.Query)
			assert.Equal(t, map[string]any{"n1_name": "A", "n2_name": "B"}, stmt.Params)
		})
	}
}

func TestCreateEdge_MergesAllRoleParams(t *testing.T) {
	left := newNode("Person", map[string]any{"name": "A"})
	right := newNode("Person", map[string]any{"name": "B"})
	edge := newEdge("KNOWS", map[string]any{"since": 2009})

	stmt, err := CreateEdge(left, right, edge, DirectionRight)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"n1_name": "A",
		"n2_name": "B",
		"e_since": 2009,
	}, stmt.Params)
}

// A node created with a null-valued property must be matchable at
// edge-creation time without that key: creation and match fragments have to
// agree on the null-filtered representation.
func TestCreateEdge_MatchFilterEqualsCreationFilter(t *testing.T) {
	node := newNode("Person", map[string]any{"name": "alpha", "score": 5, "note": nil})

	created, err := CreateNode(node)
	require.NoError(t, err)

	matched, err := CreateEdge(node, node, newEdge("SELF", nil), DirectionRight)
	require.NoError(t, err)

	assert.NotContains(t, created.Query, "note")
	assert.NotContains(t, matched.Query, "note")
	assert.Equal(t, map[string]any{"n_name": "alpha", "n_score": 5}, created.Params)
	assert.Equal(t, map[string]any{
		"n1_name": "alpha", "n1_score": 5,
		"n2_name": "alpha", "n2_score": 5,
	}, matched.Params)
}

func TestCreateEdge_InvalidEdgeLabel(t *testing.T) {
	node := newNode("Person", nil)
	_, err := CreateEdge(node, node, newEdge("KNOWS]-(x) RETURN x //", nil), DirectionRight)
	require.Error(t, err)
}

func TestClearStatements(t *testing.T) {
	stmts := ClearStatements()
	require.Len(t, stmts, 2)
	// relationships go first: nodes with attached relationships cannot be
	// deleted
	assert.Equal(t, "MATCH (a)-[e]-(b) DELETE e", stmts[0].Query)
	assert.Equal(t, "MATCH (n) DELETE n", stmts[1].Query)
}
