// Package analytics: the injected matrix-multiplication capability.
package analytics

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/velkarn/plexus/matrix"
)

// Sentinel errors for analytics execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("analytics: graph is nil")

	// ErrMultiplier is returned when the multiplier capability is missing,
	// dimensionally incompatible, or fails; causes are wrapped.
	ErrMultiplier = errors.New("analytics: matrix multiplier failure")
)

// Multiplier is the capability the triangle routines depend on.
// Implementations may be synchronous (CPU) or suspend on remote hardware;
// either way they must honor ctx.
type Multiplier interface {
	// MatMul returns the product a·b as a fresh matrix.
	MatMul(ctx context.Context, a, b *matrix.Dense) (*matrix.Dense, error)
}

// GonumMultiplier is the default CPU capability backed by gonum/mat.
type GonumMultiplier struct{}

// MatMul multiplies a·b through gonum's BLAS-backed dense kernel.
// Returns ErrMultiplier on dimension mismatch, or ctx.Err() when the
// context is already done.
// Complexity: O(r·c·k) via gonum.
func (GonumMultiplier) MatMul(ctx context.Context, a, b *matrix.Dense) (*matrix.Dense, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrMultiplier)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%w: %dx%d · %dx%d",
			ErrMultiplier, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}

	var prod mat.Dense
	prod.Mul(
		mat.NewDense(a.Rows(), a.Cols(), a.Data()),
		mat.NewDense(b.Rows(), b.Cols(), b.Data()),
	)

	out, err := matrix.NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMultiplier, err)
	}
	// A freshly allocated gonum Dense is contiguous with stride == cols.
	copy(out.Data(), prod.RawMatrix().Data)

	return out, nil
}
