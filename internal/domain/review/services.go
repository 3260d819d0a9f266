package review

// CheckEligibility enforces that the author attended the restaurant at least
// once, i.e. holds a reservation there in status completed.
func CheckEligibility(completedReservations int) error {
	if completedReservations < 1 {
		return ErrNotEligible
	}
	return nil
}
