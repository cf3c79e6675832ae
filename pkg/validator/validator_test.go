package validator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisisAlert/pkg/e"
)

type point struct {
	Lat      *decimal.Decimal `json:"latitude" validate:"omitempty,lat"`
	Lng      *decimal.Decimal `json:"longitude" validate:"omitempty,lng"`
	Radius   *decimal.Decimal `json:"radius" validate:"omitempty,radius_m"`
	Severity string           `json:"severity" validate:"omitempty,severity"`
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCheck_Valid(t *testing.T) {
	err := Check(point{Lat: dec("63.4305"), Lng: dec("10.3951"), Radius: dec("500"), Severity: "red"})
	assert.NoError(t, err)
}

func TestCheck_NilFieldsSkipped(t *testing.T) {
	assert.NoError(t, Check(point{}))
}

func TestCheck_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		in    point
		field string
	}{
		{"lat too high", point{Lat: dec("90.0000001")}, "latitude"},
		{"lng too low", point{Lng: dec("-180.5")}, "longitude"},
		{"zero radius", point{Radius: dec("0")}, "radius"},
		{"huge radius", point{Radius: dec("1000000.01")}, "radius"},
		{"unknown severity", point{Severity: "purple"}, "severity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, e.ErrInvalidInput))

			var ve *e.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCheck_BoundariesInclusive(t *testing.T) {
	assert.NoError(t, Check(point{Lat: dec("-90"), Lng: dec("180"), Radius: dec("1000000")}))
}
