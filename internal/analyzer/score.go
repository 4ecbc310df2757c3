package analyzer

// Score tier thresholds. The tiers are additive: a password earns
// points for length, character variety, and estimated entropy, then
// loses one point per penalized pattern category.
const (
	// Length tiers. Anything below lengthTier1 earns nothing and
	// triggers the short-length advisory.
	lengthTier4 = 16
	lengthTier3 = 12
	lengthTier2 = 10
	lengthTier1 = 8

	// Entropy tiers in bits.
	entropyTier3 = 80
	entropyTier2 = 60
	entropyTier1 = 40

	// maxScore and minScore bound the final score.
	maxScore = 10
	minScore = 0

	// commonPasswordScore is the fixed score assigned to any password
	// found on the common-password list, regardless of other metrics.
	commonPasswordScore = 1
)

// lengthTierPoints maps password length onto its score contribution.
func lengthTierPoints(length int) int {
	switch {
	case length >= lengthTier4:
		return 4
	case length >= lengthTier3:
		return 3
	case length >= lengthTier2:
		return 2
	case length >= lengthTier1:
		return 1
	default:
		return 0
	}
}

// varietyPoints rewards each character category beyond the first,
// up to three points.
func varietyPoints(categories int) int {
	points := categories - 1
	if points < 0 {
		return 0
	}
	if points > 3 {
		return 3
	}
	return points
}

// entropyTierPoints maps the entropy estimate onto its score contribution.
func entropyTierPoints(bits float64) int {
	switch {
	case bits >= entropyTier3:
		return 3
	case bits >= entropyTier2:
		return 2
	case bits >= entropyTier1:
		return 1
	default:
		return 0
	}
}

// clampScore bounds a raw score to [minScore, maxScore].
func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
