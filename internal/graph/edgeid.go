package graph

import (
	"regexp"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// Direction orients an edge between the two nodes named in its identifier.
type Direction int

const (
	// DirectionLeft means the right-hand node is the source ("A<-B": B to A).
	DirectionLeft Direction = iota
	// DirectionRight means the left-hand node is the source ("A->B": A to B).
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// nodeIDPattern is the character class for node identifiers inside an edge
// identifier. It deliberately excludes '<' and '>', so a direction token can
// never be swallowed by a greedy id match.
const nodeIDPattern = `[a-zA-Z0-9.,\-_ ]+`

// edgeIDRegexp is anchored at both ends: trailing text after the right-hand
// id ("A->B->C") is a parse error, not a silently ignored suffix.
var edgeIDRegexp = regexp.MustCompile(`^(` + nodeIDPattern + `)(<-|->)(` + nodeIDPattern + `)$`)

// ParseEdgeID splits an edge identifier into its left node id, direction and
// right node id. The identifier must match exactly
// "<leftId><direction><rightId>" where direction is "->" or "<-".
func ParseEdgeID(edgeID string) (left string, dir Direction, right string, err error) {
	m := edgeIDRegexp.FindStringSubmatch(edgeID)
	if m == nil {
		return "", 0, "", errors.
			ParseErrorf("edge %q does not conform to %q", edgeID, edgeIDRegexp.String()).
			WithContext("edge_id", edgeID).
			WithContext("pattern", edgeIDRegexp.String())
	}

	dir = DirectionRight
	if m[2] == "<-" {
		dir = DirectionLeft
	}
	return m[1], dir, m[3], nil
}
