package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidPlate(t *testing.T) {
	tests := []struct {
		plate string
		want  bool
	}{
		{"ABC123", true},
		{"XYZ789", true},
		{"abc123", false},
		{"AB1234", false},
		{"ABCD12", false},
		{"ABC12", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ValidPlate(tc.plate), "plate %q", tc.plate)
	}
}

func TestVehicle_ImageMigrated(t *testing.T) {
	url := "https://fleet-vehicles.s3.amazonaws.com/images/abc.jpg"
	local := "file:///tmp/abc.jpg"

	v := Vehicle{Plate: "ABC123", DailyRate: decimal.NewFromInt(50)}
	assert.False(t, v.ImageMigrated())

	v.ImageURL = &local
	assert.False(t, v.ImageMigrated())

	v.ImageURL = &url
	assert.True(t, v.ImageMigrated())
}
