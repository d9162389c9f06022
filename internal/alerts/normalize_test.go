package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-dashboard-go/internal/models"
)

func TestNormalizeDefaults(t *testing.T) {
	alert := Normalize(map[string]interface{}{})

	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, "MEDIUM", alert.Severity)
	assert.Equal(t, "Unknown", alert.Place)
	assert.Equal(t, "Safety Alert", alert.Type)
	assert.Equal(t, "CAM-000", alert.CameraID)
	assert.Equal(t, "No details", alert.Description)
	assert.Equal(t, defaultLat, alert.Lat)
	assert.Equal(t, defaultLng, alert.Lng)
	assert.Equal(t, "Unknown", alert.Lighting)
	assert.Equal(t, 0, alert.MenCount)
	assert.Equal(t, 0, alert.WomenCount)
	assert.Nil(t, alert.Image)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
	assert.Empty(t, alert.ResolvedAt)
	assert.NotEmpty(t, alert.Time)

	_, err := time.Parse(time.RFC3339, alert.ReceivedAt)
	assert.NoError(t, err)
}

func TestNormalizeNilPayload(t *testing.T) {
	alert := Normalize(nil)

	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, "MEDIUM", alert.Severity)
	assert.Equal(t, models.AlertStatusActive, alert.Status)
}

func TestNormalizeSeverityUppercased(t *testing.T) {
	for input, want := range map[string]string{
		"low":      "LOW",
		"Medium":   "MEDIUM",
		"HIGH":     "HIGH",
		"critical": "CRITICAL",
		"may_risk": "MAY_RISK",
	} {
		alert := Normalize(map[string]interface{}{"severity": input})
		assert.Equal(t, want, alert.Severity, "input %q", input)
	}
}

func TestNormalizeKeepsProvidedFields(t *testing.T) {
	raw := map[string]interface{}{
		"place":       "Market Street",
		"type":        "Lone Woman Detected",
		"cameraId":    "CAM-007",
		"description": "Single woman, low light",
		"lat":         11.2,
		"lng":         77.4,
		"time":        "2026-08-30T21:15:00Z",
		"menCount":    float64(3),
		"womenCount":  float64(1),
		"lighting":    "Dark",
		"image":       "/snippets/alert_20260830_211500.jpg",
	}

	alert := Normalize(raw)

	assert.Equal(t, "Market Street", alert.Place)
	assert.Equal(t, "Lone Woman Detected", alert.Type)
	assert.Equal(t, "CAM-007", alert.CameraID)
	assert.Equal(t, "Single woman, low light", alert.Description)
	assert.Equal(t, 11.2, alert.Lat)
	assert.Equal(t, 77.4, alert.Lng)
	assert.Equal(t, "2026-08-30T21:15:00Z", alert.Time)
	assert.Equal(t, 3, alert.MenCount)
	assert.Equal(t, 1, alert.WomenCount)
	assert.Equal(t, "Dark", alert.Lighting)
	require.NotNil(t, alert.Image)
	assert.Equal(t, "/snippets/alert_20260830_211500.jpg", *alert.Image)
}

func TestNormalizeWrongTypesDegradeToDefaults(t *testing.T) {
	raw := map[string]interface{}{
		"severity":   42,
		"place":      nil,
		"lat":        "not-a-float",
		"menCount":   "three",
		"womenCount": float64(-5),
		"image":      123,
	}

	alert := Normalize(raw)

	assert.Equal(t, "MEDIUM", alert.Severity)
	assert.Equal(t, "Unknown", alert.Place)
	assert.Equal(t, defaultLat, alert.Lat)
	assert.Equal(t, 0, alert.MenCount)
	assert.Equal(t, 0, alert.WomenCount, "negative counts clamp to zero")
	assert.Nil(t, alert.Image)
}

func TestNormalizeReceivedAtIsSystemAuthoritative(t *testing.T) {
	alert := Normalize(map[string]interface{}{"receivedAt": "1999-01-01T00:00:00Z"})

	parsed, err := time.Parse(time.RFC3339, alert.ReceivedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}

func TestNormalizeGeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		alert := Normalize(nil)
		_, dup := seen[alert.ID]
		require.False(t, dup, "duplicate id %s", alert.ID)
		seen[alert.ID] = struct{}{}
	}
}
