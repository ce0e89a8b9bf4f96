package graph

import "fmt"

// Statement is a Cypher statement together with its bound parameters.
type Statement struct {
	Query  string
	Params map[string]any
}

// CreateNode builds a parameterized CREATE statement for a single node.
func CreateNode(node Node) (Statement, error) {
	frag, params, err := node.Fragment("n")
	if err != nil {
		return Statement{}, err
	}
	return Statement{Query: "CREATE " + frag, Params: params}, nil
}

// CreateEdge builds a statement that locates both endpoint nodes and creates
// the relationship between them. The endpoints are matched with the exact
// pattern used to create them (same label, same null-filtered properties),
// so a node created earlier in the run is always findable here.
//
// If label+properties match zero or more than one stored node, the store's
// own MATCH semantics apply; this builder assumes properties are
// discriminating enough to identify a single node.
func CreateEdge(left, right Node, edge Edge, dir Direction) (Statement, error) {
	leftFrag, leftParams, err := left.Fragment("n1")
	if err != nil {
		return Statement{}, err
	}
	rightFrag, rightParams, err := right.Fragment("n2")
	if err != nil {
		return Statement{}, err
	}
	edgeFrag, edgeParams, err := edge.Fragment("e")
	if err != nil {
		return Statement{}, err
	}

	// Every edge is directed: exactly one of the two arrow heads is drawn.
	leftSym, rightSym := "-", "->"
	if dir == DirectionLeft {
		leftSym, rightSym = "<-", "-"
	}

	query := fmt.Sprintf("MATCH %s MATCH %s CREATE (n1)%s%s%s(n2)",
		leftFrag, rightFrag, leftSym, edgeFrag, rightSym)

	// Role namespacing (n1_, n2_, e_) keeps the merged maps disjoint.
	params := make(map[string]any, len(leftParams)+len(rightParams)+len(edgeParams))
	for k, v := range leftParams {
		params[k] = v
	}
	for k, v := range rightParams {
		params[k] = v
	}
	for k, v := range edgeParams {
		params[k] = v
	}

	return Statement{Query: query, Params: params}, nil
}

// ClearStatements returns the bulk-delete statements run before an upload:
// all relationships first, then all nodes.
func ClearStatements() []Statement {
	return []Statement{
		{Query: "MATCH (a)-[e]-(b) DELETE e"},
		{Query: "MATCH (n) DELETE n"},
	}
}
