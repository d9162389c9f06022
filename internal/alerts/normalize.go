package alerts

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"safety-dashboard-go/internal/models"
)

// Fallback coordinates when the producer omits location (primary camera site)
const (
	defaultLat = 11.1085
	defaultLng = 77.3411
)

// Normalize builds a complete alert from an untrusted producer payload. It
// never fails: missing, null or mistyped fields degrade to defaults so a
// partially garbled detection message still produces a usable alert.
func Normalize(raw map[string]interface{}) models.Alert {
	now := time.Now().Format(time.RFC3339)

	alert := models.Alert{
		ID:          uuid.NewString(),
		Severity:    strings.ToUpper(getString(raw, "severity", string(models.AlertSeverityMedium))),
		Place:       getString(raw, "place", "Unknown"),
		Type:        getString(raw, "type", "Safety Alert"),
		CameraID:    getString(raw, "cameraId", "CAM-000"),
		Description: getString(raw, "description", "No details"),
		Lat:         getFloat(raw, "lat", defaultLat),
		Lng:         getFloat(raw, "lng", defaultLng),
		Time:        getString(raw, "time", now),
		MenCount:    getCount(raw, "menCount"),
		WomenCount:  getCount(raw, "womenCount"),
		Lighting:    getString(raw, "lighting", "Unknown"),
		ReceivedAt:  now, // system-authoritative, any client value is ignored
		Status:      models.AlertStatusActive,
	}

	if image := getString(raw, "image", ""); image != "" {
		alert.Image = &image
	}

	return alert
}

func getString(raw map[string]interface{}, key, defaultValue string) string {
	if v, ok := raw[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return defaultValue
}

func getFloat(raw map[string]interface{}, key string, defaultValue float64) float64 {
	if v, ok := raw[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return defaultValue
}

// getCount reads a non-negative integer. JSON numbers decode as float64.
func getCount(raw map[string]interface{}, key string) int {
	v, ok := raw[key]
	if !ok {
		return 0
	}

	var n int
	switch num := v.(type) {
	case float64:
		n = int(num)
	case int:
		n = num
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}
