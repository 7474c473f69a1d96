package models

// Priority orders todos: High sorts before Medium, Medium before Low.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// PriorityRankExpr ranks the priority column numerically so descending
// order yields high, medium, low. String collation cannot express this.
const PriorityRankExpr = "CASE todos.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END"
