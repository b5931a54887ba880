package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanofcn/fcnpr/network"
)

// TestConstantFanoutChain builds a PI feeding three POs,
// after Substitute, should contain two F1O2 vertices each with two outgoing
// edges.
func TestConstantFanoutChain(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	_, err := n.CreatePO(a, "y1")
	require.NoError(t, err)
	_, err = n.CreatePO(a, "y2")
	require.NoError(t, err)
	_, err = n.CreatePO(a, "y3")
	require.NoError(t, err)

	require.NoError(t, n.Substitute(network.OrderBFS))
	require.NoError(t, n.Validate())

	counts := n.Counts()
	assert.Equal(t, 2, counts[network.F1O2])

	aOut, err := n.OutDegree(a)
	require.NoError(t, err)
	assert.Equal(t, 1, aOut, "a's out-degree must drop to 1 after normalization")
}

// TestXorDecomposition checks that decomposing an XOR produces the
// expected AOI vertex topology.
func TestXorDecomposition(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	y, err := n.CreateXor(a, b)
	require.NoError(t, err)
	_, err = n.CreatePO(y, "out")
	require.NoError(t, err)

	require.NoError(t, n.Substitute(network.OrderDFS))
	require.NoError(t, n.Validate())

	counts := n.Counts()
	assert.Equal(t, 0, counts[network.Xor], "no XOR should remain")
	assert.GreaterOrEqual(t, counts[network.F1O2], 2)
	assert.GreaterOrEqual(t, counts[network.And], 2)
	assert.GreaterOrEqual(t, counts[network.Or], 1)
	assert.GreaterOrEqual(t, counts[network.Not], 1)
}

// TestSubstituteIdempotent checks that running the rewrite pipeline twice
// leaves the network unchanged the second time.
func TestSubstituteIdempotent(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	c := n.CreatePI("c")
	d := n.CreatePI("d")
	ab, err := n.CreateOr(a, b)
	require.NoError(t, err)
	cd, err := n.CreateOr(c, d)
	require.NoError(t, err)
	y, err := n.CreateAnd(ab, cd)
	require.NoError(t, err)
	_, err = n.CreatePO(y, "y")
	require.NoError(t, err)

	require.NoError(t, n.Substitute(network.OrderBFS))
	before := n.Counts()
	assert.True(t, n.IsNormalForm())

	require.NoError(t, n.Substitute(network.OrderBFS))
	after := n.Counts()
	assert.Equal(t, before, after, "second Substitute call must be a no-op")
}

func TestValidate_PassesOnWellFormedGraph(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	_, err := n.CreateMaj(a, a, a)
	require.NoError(t, err)
	assert.NoError(t, n.Validate())
}

func TestInsertBalanceVertex(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	po, err := n.CreatePO(a, "y")
	require.NoError(t, err)
	edges, err := n.InEdges(po)
	require.NoError(t, err)
	require.Len(t, edges, 1)

	w, err := n.InsertBalanceVertex(edges[0])
	require.NoError(t, err)
	op, err := n.Op(w)
	require.NoError(t, err)
	assert.Equal(t, network.W, op)

	preds, err := n.InvAdjacent(po)
	require.NoError(t, err)
	assert.Equal(t, []network.VertexID{w}, preds)
}

func TestGetAllPaths(t *testing.T) {
	n := network.New()
	a := n.CreatePI("a")
	b := n.CreatePI("b")
	ab, err := n.CreateOr(a, b)
	require.NoError(t, err)
	paths, err := n.GetAllPaths(ab)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.Len(t, p, 1)
	}
}
