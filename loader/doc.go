// Package loader reads and writes the plain-text robot map format.
//
// A map is two files:
//
//	TestCase_<id>_EdgeList.txt   one undirected edge per line: a,b,w
//	TestCase_<id>_NodeID.csv     one vertex position per line: node,x,y
//
// Edge lines are applied in file order, so the order of the edge list fixes
// the neighbor order that BFS and DFS tie-breaking depend on. LoadUnweighted
// requires a third column but never parses it; LoadWeighted parses it as a
// non-negative float. A vertex listed twice in the node file keeps its last
// position.
//
// Errors:
//
//	ErrMalformedRecord - wrong field count or unparsable number, with line number.
//	core.ErrNegativeWeight (wrapped) - negative weight in a weighted edge list.
package loader
