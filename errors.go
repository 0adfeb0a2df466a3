package spartan

import (
	"github.com/zkspartan/spartan-core/ahp"
	"github.com/zkspartan/spartan-core/sumcheck"
)

// Sentinel errors are re-exported from ahp/sumcheck so callers can
// errors.Is against this package alone; the underlying values are
// identical, not copies, so wrapping chains produced inside ahp still
// match here.
var (
	ErrInvalidArg          = ahp.ErrInvalidArg
	ErrSerialization       = ahp.ErrSerialization
	ErrPublicInputMismatch = ahp.ErrPublicInputMismatch
	ErrFirstSubclaim       = ahp.ErrFirstSubclaim
	ErrSecondSubclaim      = ahp.ErrSecondSubclaim
	ErrOpeningMismatch     = ahp.ErrOpeningMismatch
	ErrWitnessUnsatisfied  = ahp.ErrWitnessUnsatisfied
	ErrSumcheckMismatch    = sumcheck.ErrSumcheckMismatch
)
