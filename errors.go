package blast

import "errors"

/*
Error kinds returned by the package. Callers should use errors.Is against
these sentinels rather than comparing strings; exported functions wrap
them with fmt.Errorf("...: %w", ...) to attach call-specific detail. The
one exception is a failure inside the YAML library during Serialize or
Deserialize, which is wrapped without a sentinel.
*/
var (
	// ErrBadAssignment is returned when a Var is assigned a value other
	// than 0 or 1, when Assign is called on a Const or Gate node, or when
	// a gate truth table holds an entry other than 0 or 1.
	ErrBadAssignment = errors.New("blast: bad assignment")
	// ErrLengthMismatch is returned when two bit-vectors or a bit-vector
	// and a truth table disagree on length where they must agree.
	ErrLengthMismatch = errors.New("blast: length mismatch")
	// ErrBadSliceType is returned when a slice or range argument does not
	// address a valid, in-bounds run of bit positions.
	ErrBadSliceType = errors.New("blast: bad slice bounds")
	// ErrNonConcrete is returned when an operation that requires every
	// input bit to already be Const or an assigned Var encounters a free
	// Var instead.
	ErrNonConcrete = errors.New("blast: non-concrete bit")
	// ErrBadShift is returned when a shift amount falls outside
	// [0, length]. Rotations accept any amount and reduce it modulo the
	// length, so they never return it.
	ErrBadShift = errors.New("blast: bad shift amount")
	// ErrUnknownNodeKind is returned by Eval and Serialize when a bit node
	// carries a kind tag this package does not recognise. Deserialize
	// never returns it: a record with neither value nor gate is read as an
	// unassigned Var.
	ErrUnknownNodeKind = errors.New("blast: unknown node kind")
	// ErrMissingInput is the error kind for an operation that needed an
	// input source it was not given. No function in this package returns
	// it.
	ErrMissingInput = errors.New("blast: missing input")
	// ErrMalformedDocument is returned while deserializing a document
	// whose node order is not topological, whose dependencies reference
	// an undefined id, or whose shape otherwise cannot be trusted.
	ErrMalformedDocument = errors.New("blast: malformed document")
	// ErrTooManyInputs is returned by the optimizer when, after removing
	// every inert input, more than three essential inputs remain — more
	// than a Gate node is allowed to depend on.
	ErrTooManyInputs = errors.New("blast: too many essential inputs for a gate")
)
