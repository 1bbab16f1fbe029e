// Package scoring computes the deterministic assignment base score for one
// team member. The score is pure: same inputs always give the same output,
// with no I/O and no dependence on other members.
package scoring

import (
	"math"

	"github.com/alexanderramin/taskmate/internal/domain"
)

// NeutralScore is the midpoint every score starts from, and the safe default
// when a member's analytics cannot be read at all.
const NeutralScore = 50.0

const (
	maxExpertiseBonus = 35.0
	maxSuccessBonus   = 25.0

	sweetSpotBonus     = 5.0
	atCapacityPenalty  = -10.0
	overCapacityPenalty = -20.0
	noCapacityPenalty  = -5.0

	availabilityBonus = 10.0
	experiencePenalty = -10.0

	// Below this expertise score the member is considered inexperienced in
	// the category and penalized.
	experienceFloor = 20.0
)

// BaseScore maps a member's workload, expertise, and capacity to a 0-100
// score for one task category. Missing categories resolve to zero expertise
// with a neutral success rate. The result is clamped to [0,100] and rounded
// to one decimal place, in that order.
func BaseScore(workload int, expertise domain.ExpertiseProfile, capacity int, category string) float64 {
	cat := expertise.Category(category)

	score := NeutralScore +
		expertiseBonus(cat) +
		successBonus(cat) +
		workloadAdjustment(workload, capacity) +
		availability(workload) +
		inexperience(cat)

	return round1(clamp(score, 0, 100))
}

func expertiseBonus(cat domain.CategoryExpertise) float64 {
	return cat.ExpertiseScore / 100 * maxExpertiseBonus
}

func successBonus(cat domain.CategoryExpertise) float64 {
	return cat.SuccessRatePercentage / 100 * maxSuccessBonus
}

// workloadAdjustment scores utilization. The 60-80% band is the sweet spot:
// busy enough to be engaged, with headroom for the new task.
func workloadAdjustment(workload, capacity int) float64 {
	if capacity <= 0 {
		if workload > 2 {
			return noCapacityPenalty
		}
		return 0
	}

	ratio := float64(workload) / float64(capacity)
	switch {
	case ratio <= 0.6:
		return 0
	case ratio <= 0.8:
		return sweetSpotBonus
	case ratio <= 1.0:
		return atCapacityPenalty
	default:
		return overCapacityPenalty
	}
}

func availability(workload int) float64 {
	if workload == 0 {
		return availabilityBonus
	}
	return 0
}

func inexperience(cat domain.CategoryExpertise) float64 {
	if cat.ExpertiseScore < experienceFloor {
		return experiencePenalty
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
