package doctree

import "fmt"

// ValidationError means an operation would violate a data-model invariant
// (duplicate label, deleting the root, illegal structural state).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// CycleError means a move would make a node its own descendant.
type CycleError struct {
	NodeID      string
	NewParentID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("moving node %s under %s would create a cycle", e.NodeID, e.NewParentID)
}

// NotFoundError means a referenced id or label does not exist.
type NotFoundError struct {
	What string // "node", "label" or "draft"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.What, e.ID)
}

// ImportError means serialized state is malformed or referentially broken.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return "import failed: " + e.Reason
}

func importf(format string, args ...any) *ImportError {
	return &ImportError{Reason: fmt.Sprintf(format, args...)}
}
