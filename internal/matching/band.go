package matching

// Band is the qualitative bucket of a match score.
type Band string

const (
	BandStrong Band = "strong"
	BandGood   Band = "good"
	BandFair   Band = "fair"
	BandLow    Band = "low"
)

// BandFor buckets score: 80 and up is strong, 60 good, 40 fair, anything else low.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandStrong
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandLow
	}
}
