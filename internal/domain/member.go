package domain

// Member identifies one person in a team. Unique per group and immutable for
// the duration of a recommendation request.
type Member struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// CategoryExpertise holds one member's track record in a single task category.
type CategoryExpertise struct {
	ExpertiseScore        float64 `json:"expertise_score"`
	SuccessRatePercentage float64 `json:"success_rate_percentage"`
}

// ExpertiseProfile maps category names to expertise records. Categories are an
// open set; the default roster uses the five in DefaultCategories.
type ExpertiseProfile map[string]CategoryExpertise

// DefaultCategories lists the categories every seeded profile covers.
var DefaultCategories = []string{"frontend", "backend", "testing", "database", "general"}

// Category looks up expertise for the given category. Missing categories
// resolve to a zero expertise score with a neutral 50% success rate.
func (p ExpertiseProfile) Category(name string) CategoryExpertise {
	if e, ok := p[name]; ok {
		return e
	}
	return CategoryExpertise{ExpertiseScore: 0, SuccessRatePercentage: 50}
}

// AverageExpertise returns the mean expertise score across all categories in
// the profile, or 0 for an empty profile.
func (p ExpertiseProfile) AverageExpertise() float64 {
	if len(p) == 0 {
		return 0
	}
	var total float64
	for _, e := range p {
		total += e.ExpertiseScore
	}
	return total / float64(len(p))
}

// AnalyticsSnapshot is a point-in-time read of one member's workload,
// capacity, and expertise. DataSource records whether the snapshot came from
// the real backend or a static fallback table.
type AnalyticsSnapshot struct {
	Workload   int              `json:"current_workload"`
	Capacity   int              `json:"historical_capacity"`
	Expertise  ExpertiseProfile `json:"expertise_by_category"`
	DataSource DataSource       `json:"data_source"`
}

// DefaultSnapshot is the documented resolution for unknown member ids.
func DefaultSnapshot() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		Workload: 0,
		Capacity: 3,
		Expertise: ExpertiseProfile{
			"general": {ExpertiseScore: 50, SuccessRatePercentage: 50},
		},
		DataSource: SourceMock,
	}
}
