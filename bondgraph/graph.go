/*
 * graph.go, part of ncad.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package bondgraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/rmera/ncad/atomid"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the graph. Its gonum ID is the bit pattern of the AtomID.
type Atom struct {
	atomid.AtomID
}

func (A Atom) ID() int64 { return int64(A.AtomID) }

// Bond is an undirected edge between two atoms. Its weight is
// the bond length.
type Bond struct {
	At1, At2 Atom
	Length   float64
}

func (B Bond) From() graph.Node { return B.At1 }
func (B Bond) To() graph.Node   { return B.At2 }
func (B Bond) Weight() float64  { return B.Length }
func (B Bond) ReversedEdge() graph.Edge {
	return Bond{At1: B.At2, At2: B.At1, Length: B.Length}
}

// Pair returns the atoms of the bond as a pair.
func (B Bond) Pair() atomid.BondAtomIDPair {
	return atomid.BondAtomIDPair{ID1: B.At1.AtomID, ID2: B.At2.AtomID}
}

// Graph is the bond graph of a system. The zero value is not usable, use New.
type Graph struct {
	g *simple.WeightedUndirectedGraph
}

// New returns a graph with the bonds in pairs, all with length 1.
// Self bonds and repeated bonds, in any order of the atoms, are ignored.
func New(pairs []atomid.BondAtomIDPair) *Graph {
	G := &Graph{g: simple.NewWeightedUndirectedGraph(0, math.Inf(1))}
	for _, p := range pairs {
		G.AddBond(p.ID1, p.ID2, 1)
	}
	return G
}

// AddAtom adds an atom without bonds. It returns false if the atom was already there.
func (G *Graph) AddAtom(id atomid.AtomID) bool {
	if G.Has(id) {
		return false
	}
	G.g.AddNode(Atom{id})
	return true
}

// AddBond bonds id1 and id2. Lengths that are not positive are taken as 1.
// It returns false, and doesn't change the graph, for self bonds
// and bonds already present.
func (G *Graph) AddBond(id1, id2 atomid.AtomID, length float64) bool {
	if id1 == id2 || G.HasBond(id1, id2) {
		return false
	}
	if !(length > 0) {
		length = 1
	}
	G.g.SetWeightedEdge(Bond{At1: Atom{id1}, At2: Atom{id2}, Length: length})
	return true
}

// Has returns true if id is an atom of the graph.
func (G *Graph) Has(id atomid.AtomID) bool { return G.g.Node(int64(id)) != nil }

// HasBond returns true if id1 and id2 are bonded.
func (G *Graph) HasBond(id1, id2 atomid.AtomID) bool {
	return G.g.HasEdgeBetween(int64(id1), int64(id2))
}

// Len returns the number of atoms.
func (G *Graph) Len() int { return G.g.Nodes().Len() }

// Atoms returns all the atoms, sorted.
func (G *Graph) Atoms() []atomid.AtomID {
	return sortedIDs(graph.NodesOf(G.g.Nodes()))
}

// Bonds returns all the bonds, ordered by their first and then second atom,
// with the smaller atom first in each bond.
func (G *Graph) Bonds() []Bond {
	ret := make([]Bond, 0, G.g.Edges().Len())
	for edges := G.g.WeightedEdges(); edges.Next(); {
		b := edges.WeightedEdge().(Bond)
		if b.At1.AtomID > b.At2.AtomID {
			b = b.ReversedEdge().(Bond)
		}
		ret = append(ret, b)
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].At1 != ret[j].At1 {
			return ret[i].At1.AtomID < ret[j].At1.AtomID
		}
		return ret[i].At2.AtomID < ret[j].At2.AtomID
	})
	return ret
}

// Neighbors returns the atoms bonded to id, sorted. It is empty
// if id is not in the graph.
func (G *Graph) Neighbors(id atomid.AtomID) []atomid.AtomID {
	if !G.Has(id) {
		return nil
	}
	return sortedIDs(graph.NodesOf(G.g.From(int64(id))))
}

// Degree returns the number of bonds of id.
func (G *Graph) Degree(id atomid.AtomID) int {
	if !G.Has(id) {
		return 0
	}
	return G.g.From(int64(id)).Len()
}

// ShortestPath returns the atoms in the path of least total bond length from
// id1 to id2, both included, and that length. The path is nil and the
// length +Inf if the atoms are not connected.
func (G *Graph) ShortestPath(id1, id2 atomid.AtomID) ([]atomid.AtomID, float64) {
	if !G.Has(id1) || !G.Has(id2) {
		return nil, math.Inf(1)
	}
	nodes, w := path.DijkstraFrom(Atom{id1}, G.g).To(int64(id2))
	if len(nodes) == 0 {
		return nil, math.Inf(1)
	}
	ret := make([]atomid.AtomID, len(nodes))
	for i, n := range nodes {
		ret[i] = atomid.AtomID(n.ID())
	}
	return ret, w
}

// Fragments returns the connected components of the graph. Each fragment is
// sorted, and the fragments are sorted by their first atom.
func (G *Graph) Fragments() [][]atomid.AtomID {
	cc := topo.ConnectedComponents(G.g)
	ret := make([][]atomid.AtomID, len(cc))
	for i, c := range cc {
		ret[i] = sortedIDs(c)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// AssignComponents sets the Component field of every atom to first plus the
// index of its fragment in Fragments, and rebuilds the graph with the new
// identifiers. It returns the old-to-new map. Component values reaching
// atomid.ManualComponent are not used: if the fragments need them, or if two
// atoms would get the same identifier, an error is returned and the graph is
// left unchanged.
func (G *Graph) AssignComponents(first uint32) (map[atomid.AtomID]atomid.AtomID, error) {
	frags := G.Fragments()
	if len(frags) == 0 {
		return map[atomid.AtomID]atomid.AtomID{}, nil
	}
	if first >= atomid.ManualComponent || uint64(first)+uint64(len(frags)) > atomid.ManualComponent {
		return nil, newError(ErrComponents, fmt.Sprintf("%d fragments starting at %d", len(frags), first), "AssignComponents")
	}
	trans := make(map[atomid.AtomID]atomid.AtomID, G.Len())
	used := make(map[atomid.AtomID]bool, G.Len())
	for i, f := range frags {
		for _, old := range f {
			//can't overflow, the range was checked above.
			nw, _ := old.WithComponent(first + uint32(i))
			if used[nw] {
				return nil, newError(ErrCollision, fmt.Sprintf("more than one atom would become %v", nw), "AssignComponents")
			}
			used[nw] = true
			trans[old] = nw
		}
	}
	g := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for old, nw := range trans {
		if G.Degree(old) == 0 {
			g.AddNode(Atom{nw})
		}
	}
	for _, b := range G.Bonds() {
		g.SetWeightedEdge(Bond{At1: Atom{trans[b.At1.AtomID]}, At2: Atom{trans[b.At2.AtomID]}, Length: b.Length})
	}
	G.g = g
	return trans, nil
}

func sortedIDs(nodes []graph.Node) []atomid.AtomID {
	ret := make([]atomid.AtomID, len(nodes))
	for i, n := range nodes {
		ret[i] = atomid.AtomID(n.ID())
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
