package services

import (
	"testing"

	"atsb-dashboard/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCause(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"terrain collision", "Controlled flight into terrain during a charter flight", models.CauseCollisionTerrain},
		{"airprox", "An airprox occurred between two aircraft on final", models.CauseNearCollision},
		{"ditching", "The helicopter ditched; ditching occurred close to the reef", models.CauseDitching},
		{"mechanical", "The landing gear failed to extend", models.CauseMechanical},
		{"operational", "The aircraft departed the runway surface", models.CauseOperational},
		{"no match", "A survey of cabin safety cards", models.CauseOther},
		{"case insensitive", "ENGINE FAILURE shortly after departure", models.CauseMechanical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCause(tt.text))
		})
	}
}

func TestClassifyCauseRuleOrderDecidesTies(t *testing.T) {
	// Both the Mechanical and Operational keyword lists match; Mechanical is
	// checked first, so it wins.
	text := "After the engine lost power the aircraft overran the runway"
	assert.Equal(t, models.CauseMechanical, ClassifyCause(text))

	// Ditching is checked before Mechanical
	text = "Water entered the engine intake during the ditching"
	assert.Equal(t, models.CauseDitching, ClassifyCause(text))
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"fatal", "The pilot sustained fatal injuries", models.SeverityFatal},
		{"fatal outranks injury", "One passenger was fatally injured and two sustained minor injuries", models.SeverityFatal},
		{"serious injury", "The passenger sustained a serious injury", models.SeveritySerious},
		{"minor injury", "The pilot received a minor injury during the evacuation", models.SeverityInjury},
		{"generic injured", "Two occupants were injured", models.SeverityInjury},
		{"no keywords", "The investigation is continuing", models.SeverityUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySeverity(tt.text))
		})
	}
}

func TestClassifierIndependence(t *testing.T) {
	// Cause and severity are independent ordered rule sets over the same text
	text := "Fatal accident: the helicopter ditched and sank; ditching in open water"
	assert.Equal(t, models.CauseDitching, ClassifyCause(text))
	assert.Equal(t, models.SeverityFatal, ClassifySeverity(text))
}
