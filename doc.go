/*
Package blast implements a symbolic bit-level computation engine.

Bits and Bit-Vectors

A Bit is a node in a directed acyclic graph: a Const (a fixed 0 or 1), a Var
(a free input, possibly assigned a concrete value for the duration of one
Analysis.Compute call), or a Gate (1 to 3 dependencies plus a truth table).
A *Bit is its own identity handle — see Reference in reference.go — since
two structurally identical Gate nodes are still two distinct wires in the
graph.

A BitVector is a fixed-length, big-endian (index 0 is most significant)
sequence of Bit references with an algebra of slicing, assignment, bitwise
operators, rotate/shift and ripple-carry arithmetic built on top of Gate
composition.

Analysis and Optimize

Analysis walks the DAG reachable from a BitVector to find its free inputs
and exhaustively evaluate it one enumeration row at a time. Optimize (and
the node-local OptimizeNode) eliminates inputs that never affect a node's
output and collapses a table that has become constant down to a Const.

Serialization

Serialize/Deserialize persist a BitVector as a topologically ordered YAML
document, so a later deserialize can always resolve a Gate's dependencies
the moment it reads them.

Consumers

Package sha256gate is a worked example of a consumer built entirely from
the bit-vector algebra above it, with no further access to the DAG
internals. Package report builds sweep statistics and plots over an
Analysis the way the original run-manager in this project's history built
them over a particle swarm. example/blastcli is the command-line front end
described by this package's design notes.
*/
package blast
