package dataset

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidArgument is returned when a mutation receives an argument it cannot apply,
// such as a negative start index for Modify. The mutation is aborted with no side effects.
const ErrInvalidArgument = constError("invalid argument")
