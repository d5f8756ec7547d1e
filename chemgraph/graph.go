package chemgraph

import (
	"fmt"
	"math"
	"sort"

	chem "github.com/molrx/molrx"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the graph. Its ID is the index of the atom in the molecule.
type Atom struct {
	*chem.Atom
	id int64
}

func (A *Atom) ID() int64 {
	return A.id
}

// Bond is an undirected, weighted edge of the graph. Multi-center bonds
// become one Bond per pair of atoms.
type Bond struct {
	*chem.Bond
	At1, At2   *Atom
	Weightfunc func(*Bond) float64
}

// Weight returns the weight of the bond, 1 if no weight function was given.
func (B *Bond) Weight() float64 {
	if B.Weightfunc == nil {
		return 1
	}
	return B.Weightfunc(B)
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

// ReversedEdge returns a new edge with the ends switched. The original is not touched.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1, Weightfunc: B.Weightfunc}
}

func (B *Bond) joins(id1, id2 int64) bool {
	return (B.At1.id == id1 && B.At2.id == id2) || (B.At1.id == id2 && B.At2.id == id1)
}

// Topology implements the gonum graph.Undirected and graph.Weighted interfaces
// on top of a chem.Molecule. The molecule should not be modified while the
// Topology is in use.
type Topology struct {
	mol   *chem.Molecule
	atoms []*Atom
	bonds []*Bond
}

// TopologyFromChem builds the graph of mol. If weightfunc is nil, every bond weights 1,
// so path lengths are topological distances.
func TopologyFromChem(mol *chem.Molecule, weightfunc func(*Bond) float64) *Topology {
	T := &Topology{mol: mol, atoms: make([]*Atom, mol.Len())}
	for i := 0; i < mol.Len(); i++ {
		T.atoms[i] = &Atom{Atom: mol.Atom(i), id: int64(i)}
	}
	for _, b := range mol.Bonds() {
		for i := 0; i < len(b.Atoms); i++ {
			for j := i + 1; j < len(b.Atoms); j++ {
				At1 := T.atomOf(b.Atoms[i])
				At2 := T.atomOf(b.Atoms[j])
				if At1 == nil || At2 == nil {
					panic(fmt.Sprintf("TopologyFromChem: Bond %d has at least one non-existent atom", mol.BondIndex(b)))
				}
				T.bonds = append(T.bonds, &Bond{Bond: b, At1: At1, At2: At2, Weightfunc: weightfunc})
			}
		}
	}
	return T
}

func (T *Topology) atomOf(at *chem.Atom) *Atom {
	i := T.mol.AtomIndex(at)
	if i < 0 {
		return nil
	}
	return T.atoms[i]
}

// Molecule returns the molecule the graph was built from.
func (T *Topology) Molecule() *chem.Molecule {
	return T.mol
}

// Node returns the atom with the given ID, or nil.
func (T *Topology) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(T.atoms)) {
		return nil
	}
	return T.atoms[id]
}

// NodeOf returns the graph node of at, or nil if at is not in the molecule.
func (T *Topology) NodeOf(at *chem.Atom) *Atom {
	return T.atomOf(at)
}

func (T *Topology) Nodes() graph.Nodes {
	n := make([]graph.Node, len(T.atoms))
	for i, v := range T.atoms {
		n[i] = v
	}
	return iterator.NewOrderedNodes(n)
}

// From returns the atoms bonded to the atom with ID id.
func (T *Topology) From(id int64) graph.Nodes {
	ret := make([]graph.Node, 0, 4)
	for _, b := range T.bonds {
		///undirected graph
		if b.At1.id == id {
			ret = append(ret, b.At2)
		} else if b.At2.id == id {
			ret = append(ret, b.At1)
		}
	}
	return iterator.NewOrderedNodes(ret)
}

func (T *Topology) HasEdgeBetween(id1, id2 int64) bool {
	return T.bondBetween(id1, id2) != nil
}

func (T *Topology) bondBetween(id1, id2 int64) *Bond {
	for _, b := range T.bonds {
		if b.joins(id1, id2) {
			return b
		}
	}
	return nil
}

func (T *Topology) Edge(id1, id2 int64) graph.Edge {
	//I'm making the graph always undirected
	return T.EdgeBetween(id1, id2)
}

func (T *Topology) EdgeBetween(id1, id2 int64) graph.Edge {
	b := T.bondBetween(id1, id2)
	if b == nil {
		return nil
	}
	if b.At1.id != id1 {
		return b.ReversedEdge()
	}
	return b
}

func (T *Topology) WeightedEdge(id1, id2 int64) graph.WeightedEdge {
	return T.WeightedEdgeBetween(id1, id2)
}

func (T *Topology) WeightedEdgeBetween(id1, id2 int64) graph.WeightedEdge {
	e := T.EdgeBetween(id1, id2)
	if e == nil {
		return nil
	}
	return e.(*Bond)
}

func (T *Topology) Weight(id1, id2 int64) (w float64, ok bool) {
	if id1 == id2 {
		return 0.0, true
	}
	b := T.bondBetween(id1, id2)
	if b == nil {
		return math.Inf(1), false
	}
	return b.Weight(), true
}

// Distance returns the number of bonds in the shortest path between a and b,
// or -1 if there is no path. Both atoms must be in the molecule.
func (T *Topology) Distance(a, b *chem.Atom) int {
	na, nb := T.atomOf(a), T.atomOf(b)
	if na == nil || nb == nil {
		panic("Distance: atom not in the molecule")
	}
	w := path.DijkstraFrom(na, T).WeightTo(nb.id)
	if math.IsInf(w, 1) {
		return -1
	}
	return int(math.Round(w))
}

// Distance returns the topological distance between a and b in mol, or -1 if
// they are not connected.
func Distance(mol *chem.Molecule, a, b *chem.Atom) int {
	return TopologyFromChem(mol, nil).Distance(a, b)
}

// Components returns the atoms of each connected component of the molecule.
// Atoms within a component keep the molecule's order, and components are
// sorted by their first atom.
func (T *Topology) Components() [][]*chem.Atom {
	cc := topo.ConnectedComponents(T)
	ids := make([][]int, len(cc))
	for i, c := range cc {
		ids[i] = make([]int, len(c))
		for j, n := range c {
			ids[i][j] = int(n.ID())
		}
		sort.Ints(ids[i])
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i][0] < ids[j][0] })
	ret := make([][]*chem.Atom, len(ids))
	for i, c := range ids {
		ret[i] = make([]*chem.Atom, len(c))
		for j, id := range c {
			ret[i][j] = T.atoms[id].Atom
		}
	}
	return ret
}
