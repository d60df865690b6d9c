package domain

// Project sheet columns, in sheet order.
const (
	ColProjectName = "Project Name"
	ColDescription = "Description"
	ColStatus      = "Status"
	ColStartDate   = "Start Date"
	ColDueDate     = "Due Date"
	ColAssignedTo  = "Assigned To"
	ColPriority    = "Priority"
	ColBudget      = "Budget"
	ColActualCost  = "Actual Cost"
	ColNotes       = "Notes"
)

// ProjectColumns is the expected schema of the project sheet.
var ProjectColumns = []string{
	ColProjectName, ColDescription, ColStatus, ColStartDate, ColDueDate,
	ColAssignedTo, ColPriority, ColBudget, ColActualCost, ColNotes,
}

// ProjectRequiredFields must be non-empty when adding a project.
var ProjectRequiredFields = []string{ColProjectName, ColStatus, ColStartDate, ColDueDate}

// CallColumns is the expected schema of the call-center sheet.
var CallColumns = []string{
	"call_id", "customer_name", "email", "phone number", "Booking Status", "voice_agent_name",
	"call_date", "call_start_time", "call_end_time", "call_duration_seconds", "call_duration_hms",
	"cost", "call_success", "appointment_scheduled", "intent_detected", "sentiment_score",
	"confidence_score", "keyword_tags", "summary_word_count", "transcript", "summary",
	"action_items", "call_recording_url", "customer_satisfaction", "resolution_time_seconds",
	"escalation_required", "language_detected", "emotion_detected", "speech_rate_wpm",
	"silence_percentage", "interruption_count", "ai_accuracy_score", "follow_up_required",
	"customer_tier", "call_complexity", "agent_performance_score", "call_outcome",
	"revenue_impact", "lead_quality_score", "conversion_probability", "next_best_action",
	"customer_lifetime_value", "call_category", "Upload_Timestamp",
}

// SampleProjects is demonstration data for an unconfigured project sheet.
func SampleProjects() Table {
	rows := [][]any{
		{"Website Redesign", "Revamp company website for modern look", "In Progress", "2024-01-01", "2024-06-30", "Alice", "High", 15000, 12000, "Focus on UX/UI"},
		{"Marketing Campaign", "Launch new digital marketing ads", "Not Started", "2024-02-15", "2024-05-31", "Bob", "Medium", 8000, 0, "Needs content strategy"},
		{"Product Launch", "Introduce new software product to market", "On Hold", "2024-03-01", "2024-09-30", "Charlie", "High", 25000, 5000, "Requires extensive testing"},
		{"Internal Tool Dev", "Develop internal CRM system", "Completed", "2023-11-01", "2024-02-28", "David", "Low", 5000, 4800, "Deployed successfully"},
		{"Client Onboarding", "Streamline new client setup process", "In Progress", "2024-04-10", "2024-05-15", "Eve", "Medium", 3000, 1000, "Waiting for client data"},
	}
	values := make([][]any, 0, len(rows)+1)
	header := make([]any, len(ProjectColumns))
	for i, c := range ProjectColumns {
		header[i] = c
	}
	values = append(values, header)
	values = append(values, rows...)
	return NewTable(values)
}

// QualityReport is the result of scanning a project table for data problems.
type QualityReport struct {
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Score    float64  `json:"quality_score"`
}

// CallFilter narrows the call-center table. Zero values match everything.
type CallFilter struct {
	CustomerName string   `form:"customer_name"`
	AgentName    string   `form:"agent_name"`
	CallSuccess  string   `form:"call_success" binding:"omitempty,oneof=Yes No"`
	SentimentMin *float64 `form:"sentiment_min" binding:"omitempty,gte=-1,lte=1"`
	SentimentMax *float64 `form:"sentiment_max" binding:"omitempty,gte=-1,lte=1"`
}
