package model

// Profile is the authenticated identity as served by GET /auth/me.
// Role is authoritative only as returned by the backend; the client never
// computes or infers it.
type Profile struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Meta carries the reference enumerations used to populate selection
// controls. Fetched once per session from GET /meta; order is significant.
type Meta struct {
	Roles            []string `json:"roles"`
	IncidentStatuses []string `json:"incident_statuses"`
}

type Incident struct {
	IncidentID      string  `json:"incident_id"`
	ErrorName       string  `json:"error_name"`
	Component       string  `json:"component"`
	RootCause       string  `json:"root_cause"`
	Remark          string  `json:"remark"`
	ActionTaken     string  `json:"action_taken"`
	StartDate       string  `json:"start_date"` // display format DD/MM/YYYY
	StartTime       string  `json:"start_time"` // HH:MM AM/PM
	EndDate         string  `json:"end_date"`
	EndTime         string  `json:"end_time"`
	DurationMinutes float64 `json:"duration_minutes,omitempty"`
	Status          string  `json:"status,omitempty"`
	ModifiedBy      string  `json:"modified_by,omitempty"`
	ModifiedAt      string  `json:"modified_at,omitempty"`
}

// IncidentUpdate is a partial update; nil fields are left untouched by the
// backend.
type IncidentUpdate struct {
	RootCause   *string `json:"root_cause,omitempty"`
	Remark      *string `json:"remark,omitempty"`
	ActionTaken *string `json:"action_taken,omitempty"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// SearchPage is one page of incident search results. The client never
// paginates locally; Total and Rows are taken verbatim from the backend.
type SearchPage struct {
	Total int        `json:"total"`
	Rows  []Incident `json:"rows"`
}

type DeleteRequest struct {
	IncidentID  string `json:"incident_id"`
	RequestedBy string `json:"requested_by"`
	Status      string `json:"status"`
	Approver    string `json:"approver"`
	RequestedAt string `json:"requested_at"`
	ApprovedAt  string `json:"approved_at"`
}

// DeleteRequestPending is the only status an approval acts on.
const DeleteRequestPending = "Pending"

type UserAccount struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	IsActive BoolInt `json:"is_active"`
}

type Dashboard struct {
	TotalIncidents      int              `json:"total_incidents"`
	OpenCases           int              `json:"open_cases"`
	MonitoringCases     int              `json:"monitoring_cases"`
	ResolvedClosedCases int              `json:"resolved_closed_cases"`
	AvgDurationMinutes  float64          `json:"avg_duration_minutes"`
	IncidentsLast7Days  int              `json:"incidents_last_7_days"`
	TopComponents       []ComponentCount `json:"top_components"`
	StatusBreakdown     []StatusCount    `json:"status_breakdown"`
}

type ComponentCount struct {
	Component string `json:"component"`
	Total     int    `json:"total"`
}

type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

type ChangeLogEntry struct {
	FieldName  string `json:"field_name"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	ModifiedBy string `json:"modified_by"`
	ModifiedAt string `json:"modified_at"`
}
