package models

// AlertSeverity represents the severity level of alerts
type AlertSeverity string

const (
	AlertSeverityLow      AlertSeverity = "LOW"
	AlertSeverityMedium   AlertSeverity = "MEDIUM"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
	AlertSeverityMayRisk  AlertSeverity = "MAY_RISK"
)

// AlertStatus represents the lifecycle state of an alert
type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)

// Alert represents a single reported safety event. Field names match the
// wire format used by the detection producers and the dashboard.
type Alert struct {
	ID          string      `json:"id"`
	Severity    string      `json:"severity"`
	Place       string      `json:"place"`
	Type        string      `json:"type"`
	CameraID    string      `json:"cameraId"`
	Description string      `json:"description"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Time        string      `json:"time"`
	Image       *string     `json:"image"`
	MenCount    int         `json:"menCount"`
	WomenCount  int         `json:"womenCount"`
	Lighting    string      `json:"lighting"`
	ReceivedAt  string      `json:"receivedAt"`
	Status      AlertStatus `json:"status"`
	ResolvedAt  string      `json:"resolvedAt,omitempty"`
}

// IsActive reports whether the alert has not been resolved yet
func (a *Alert) IsActive() bool {
	return a.Status == AlertStatusActive
}
