package domain

type DataSource string

const (
	SourceReal    DataSource = "real"
	SourceMock    DataSource = "mock"
	SourceDefault DataSource = "default"
)

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// ValidConfidenceLevels is the canonical set of accepted confidence strings.
var ValidConfidenceLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type PlanType string

const (
	PlanSolo  PlanType = "solo"
	PlanPair  PlanType = "pair"
	PlanSwarm PlanType = "swarm"
)

// ValidPlanTypes is the canonical set of accepted plan type strings.
var ValidPlanTypes = map[string]bool{
	"solo": true, "pair": true, "swarm": true,
}

type WorkloadStatus string

const (
	StatusOverloaded WorkloadStatus = "overloaded"
	StatusHigh       WorkloadStatus = "high"
	StatusModerate   WorkloadStatus = "moderate"
	StatusLight      WorkloadStatus = "light"
	StatusAvailable  WorkloadStatus = "available"
)

// StatusForUtilization maps a utilization percentage to its workload status label.
func StatusForUtilization(utilization float64) WorkloadStatus {
	switch {
	case utilization >= 100:
		return StatusOverloaded
	case utilization >= 80:
		return StatusHigh
	case utilization >= 50:
		return StatusModerate
	case utilization > 0:
		return StatusLight
	default:
		return StatusAvailable
	}
}
