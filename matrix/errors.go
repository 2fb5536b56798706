// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. The checked inverse
// variants return these sentinels and tests match them via errors.Is. The
// unchecked numeric kernels never return errors: singular input produces
// NaN/Inf values per the package contract, and out-of-range indexing panics
// because it is a programmer error.

package matrix

import "errors"

// ErrSingular is returned by the InverseChecked variants when the
// determinant's magnitude falls below fmath.MinNormal, i.e. when the matrix
// carries no invertible volume.
var ErrSingular = errors.New("matrix: singular matrix")
