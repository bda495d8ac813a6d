package heredity

import "math"

// HypothesisSpace returns the number of joint hypotheses enumerated for a
// population of n people before evidence filtering: 2^n trait subsets times
// the 3^n disjoint (one-copy, two-copy) gene partitions, i.e. 6^n. The count
// is returned as a float64 because 6^n outgrows an int for populations far
// smaller than the enumeration itself could ever finish on.
func HypothesisSpace(n int) float64 {
	return math.Pow(6, float64(n))
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
