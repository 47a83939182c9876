package mandel

import (
	"context"
)

//go:generate irpc $GOFILE

// FieldProvider hands out the rendered fields of a grid.
type FieldProvider interface {
	// GridSize returns the number of fields per side of the grid.
	GridSize() (int, error)
	// Field returns field (row, col), waiting until it is rendered.
	Field(ctx context.Context, row, col int) (FieldImage, error)
}
