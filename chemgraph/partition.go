package chemgraph

import (
	chem "github.com/molrx/molrx"
)

// Partition splits mol into its connected components. Each component becomes a
// new Molecule that holds the very same atom, bond and electron container objects
// as mol (nothing is copied), so references taken on mol stay valid in the
// fragments. mol itself is not changed, but it should not be used afterwards, as it shares
// its objects with the fragments. A connected molecule gives a set with one
// fragment. Fragments are ordered by their first atom.
func Partition(mol *chem.Molecule) (chem.MoleculeSet, error) {
	if err := mol.Validate(); err != nil {
		return nil, errDecorate(err, "Partition")
	}
	comps := TopologyFromChem(mol, nil).Components()
	owner := make(map[*chem.Atom]int, mol.Len())
	ret := make(chem.MoleculeSet, len(comps))
	for i, c := range comps {
		ret[i] = chem.NewMolecule(mol.Name)
		for _, at := range c {
			ret[i].AddAtom(at)
			owner[at] = i
		}
	}
	for _, ec := range mol.ElectronContainers() {
		i, ok := owner[ec.Members()[0]]
		if !ok {
			return nil, chem.NewError("electron container references an atom outside the molecule", chem.ErrNotMember, "Partition")
		}
		if err := ret[i].AddElectronContainer(ec); err != nil {
			//means a bond spans 2 components, can't happen unless mol is broken.
			return nil, errDecorate(err, "Partition")
		}
	}
	return ret, nil
}

// IsConnected returns true if mol has only one connected component.
// An empty molecule is not connected.
func IsConnected(mol *chem.Molecule) bool {
	return len(TopologyFromChem(mol, nil).Components()) == 1
}

// errDecorate is a helper function that asserts that the error
// implements chem.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(chem.Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return chem.NewError("", err, caller)
}
