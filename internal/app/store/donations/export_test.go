package donationstore

import (
	"context"

	"github.com/dalemusser/roktosheba/internal/domain/models"
)

// ForceSequential makes Assign skip the transaction path.
func (a *Assigner) ForceSequential() { a.sequential = true }

// FailInsertWith makes the assignment log insert fail with err.
func (a *Assigner) FailInsertWith(err error) {
	a.insert = func(context.Context, models.DonorAssignment) error { return err }
}
