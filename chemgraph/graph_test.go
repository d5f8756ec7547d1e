package chemgraph

import (
	"testing"

	chem "github.com/molrx/molrx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

var _ graph.Undirected = (*Topology)(nil)
var _ graph.Weighted = (*Topology)(nil)

// chain returns a linear molecule of n carbons.
func chain(n int) *chem.Molecule {
	mol := chem.NewMolecule("chain")
	for i := 0; i < n; i++ {
		mol.AddAtom(chem.NewAtom("C"))
		if i > 0 {
			mol.AddBond(i-1, i, chem.OrderSingle)
		}
	}
	return mol
}

func TestDistance(Te *testing.T) {
	mol := chain(5)
	T := TopologyFromChem(mol, nil)
	assert.Equal(Te, 0, T.Distance(mol.Atom(2), mol.Atom(2)))
	assert.Equal(Te, 4, T.Distance(mol.Atom(0), mol.Atom(4)))
	//close the ring
	mol.AddBond(4, 0, chem.OrderSingle)
	assert.Equal(Te, 1, Distance(mol, mol.Atom(0), mol.Atom(4)))
	assert.Equal(Te, 2, Distance(mol, mol.Atom(1), mol.Atom(4)))

	lone := chem.NewAtom("O")
	mol.AddAtom(lone)
	assert.Equal(Te, -1, Distance(mol, mol.Atom(0), lone))
	assert.Panics(Te, func() { Distance(mol, mol.Atom(0), chem.NewAtom("N")) })
}

func TestGraph(Te *testing.T) {
	mol := chain(3)
	T := TopologyFromChem(mol, func(b *Bond) float64 { return b.Order * 2 })
	assert.Equal(Te, 3, T.Nodes().Len())
	assert.Equal(Te, 2, T.From(1).Len())
	assert.True(Te, T.HasEdgeBetween(1, 0))
	assert.False(Te, T.HasEdgeBetween(0, 2))
	e := T.Edge(1, 0)
	require.NotNil(Te, e)
	assert.Equal(Te, int64(1), e.From().ID())
	assert.Equal(Te, int64(0), e.To().ID())
	w, ok := T.Weight(0, 1)
	assert.True(Te, ok)
	assert.InDelta(Te, 2.0, w, 1e-9)
	_, ok = T.Weight(0, 2)
	assert.False(Te, ok)
	assert.Nil(Te, T.Node(7))
	assert.Same(Te, mol.Atom(1), T.NodeOf(mol.Atom(1)).Atom)
}

func TestPartition(Te *testing.T) {
	mol := chain(4)
	mol.AddLonePair(3)
	mol.AddSingleElectron(0)
	frags, err := Partition(mol)
	require.NoError(Te, err)
	require.Len(Te, frags, 1)
	assert.True(Te, IsConnected(mol))

	require.NoError(Te, mol.RemoveBond(mol.Bond(1)))
	assert.False(Te, IsConnected(mol))
	frags, err = Partition(mol)
	require.NoError(Te, err)
	require.Len(Te, frags, 2)
	a, b := frags[0], frags[1]
	assert.Equal(Te, []*chem.Atom{mol.Atom(0), mol.Atom(1)}, a.Atoms())
	assert.Equal(Te, []*chem.Atom{mol.Atom(2), mol.Atom(3)}, b.Atoms())
	assert.Equal(Te, 1, a.NBonds())
	assert.Equal(Te, 1, a.Unpaired())
	assert.Equal(Te, 1, b.LonePairCount(mol.Atom(3)))
	assert.Same(Te, mol.Bond(1), b.Bond(0))
	assert.NoError(Te, a.Validate())
	assert.NoError(Te, b.Validate())
}

func TestPartitionBroken(Te *testing.T) {
	mol := chain(2)
	mol.Bond(0).Atoms[1] = chem.NewAtom("C")
	_, err := Partition(mol)
	assert.ErrorIs(Te, err, chem.ErrNotMember)
	assert.False(Te, IsConnected(chem.NewMolecule("empty")))
}
