package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/network"
)

func buildAndTree(t *testing.T) (*network.Network, network.VertexID, network.VertexID, network.VertexID, network.VertexID) {
	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	and, err := n.CreateAnd(a, b)
	require.NoError(t, err)
	po, err := n.CreatePO(and, "y")
	require.NoError(t, err)
	return n, a, b, and, po
}

func TestJointDFS_VisitsOnlyWhenPredecessorsSettled(t *testing.T) {
	n, a, b, and, po := buildAndTree(t)
	order := jointDFS(n)
	assert.Equal(t, []network.VertexID{a, b, and, po}, order)
}

func TestColorEdges_SharedFanInGetsSameColor(t *testing.T) {
	n, a, b, and, po := buildAndTree(t)
	order := jointDFS(n)
	colors := colorEdges(n, order)

	aOut, _ := n.OutEdges(a)
	bOut, _ := n.OutEdges(b)
	andOut, _ := n.OutEdges(and)
	_ = po

	require.Len(t, aOut, 1)
	require.Len(t, bOut, 1)
	require.Len(t, andOut, 1)

	assert.Equal(t, colors[aOut[0]], colors[bOut[0]])
	assert.NotEqual(t, White, colors[aOut[0]])
	assert.NotEqual(t, White, colors[andOut[0]])
}
