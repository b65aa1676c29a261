// SPDX-License-Identifier: MIT

package gcn

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrShape is matched (errors.Is) by every *ShapeError: a non-square
	// adjacency, input_dim ≠ N, non-positive dims, or a mis-shaped feature
	// or weight matrix.
	ErrShape = errors.New("gcn: shape mismatch")

	// ErrDegenerateDegree is returned by New under WithStrictDegree when a
	// node's degree is not strictly positive and finite, i.e. d_i^(-1/2)
	// would be non-finite.
	ErrDegenerateDegree = errors.New("gcn: degenerate node degree")
)

// ShapeError describes a dimension mismatch on one operand.
// Want holds the expected (rows, cols); -1 marks an unconstrained axis.
// When Reason is set it replaces the Want part of the message.
type ShapeError struct {
	Op      string // "New", "Forward", "SetWeights", ...
	Operand string // "adjacency", "features", "weights", "dims", ...
	Want    [2]int
	Got     [2]int
	Reason  string
}

func (e *ShapeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("gcn: %s: %s: %s, got %dx%d", e.Op, e.Operand, e.Reason, e.Got[0], e.Got[1])
	}
	return fmt.Sprintf("gcn: %s: %s: want %s, got %dx%d",
		e.Op, e.Operand, axis(e.Want[0])+"x"+axis(e.Want[1]), e.Got[0], e.Got[1])
}

// Is makes errors.Is(err, ErrShape) true for every ShapeError.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

func axis(n int) string {
	if n < 0 {
		return "*"
	}

	return fmt.Sprint(n)
}

// shapeErr builds a ShapeError with stack context attached.
func shapeErr(op, operand string, wantR, wantC, gotR, gotC int) error {
	return errors.WithStack(&ShapeError{
		Op:      op,
		Operand: operand,
		Want:    [2]int{wantR, wantC},
		Got:     [2]int{gotR, gotC},
	})
}

// dimsErr reports non-positive layer dimensions.
func dimsErr(op string, inputDim, outputDim int) error {
	return errors.WithStack(&ShapeError{
		Op:      op,
		Operand: "dims",
		Want:    [2]int{-1, -1},
		Got:     [2]int{inputDim, outputDim},
		Reason:  "input_dim and output_dim must be positive",
	})
}
