package engine

import "fmt"

// Operation selects how UpdateData applies its rows.
type Operation int

// Data operations.
const (
	// Append adds rows at the end of the data.
	Append Operation = iota
	// Modify overwrites rows from an absolute start index, appending past the end.
	Modify
	// Delete removes every record equal to any of the rows.
	Delete
)

// String returns the lowercase operation name.
func (o Operation) String() string {
	switch o {
	case Append:
		return "append"
	case Modify:
		return "modify"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}
