package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// PlatePattern is the required plate format: three uppercase letters followed
// by three digits (e.g. ABC123).
var PlatePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

// Vehicle is a fleet record keyed by plate.
//
// At most one of the two image references is current at a time: once ImageURL
// holds an https:// URL the record is considered migrated and image migration
// skips it.
type Vehicle struct {
	// Plate is the primary key, format AAA###.
	Plate string

	Brand string
	Year  int
	Color string

	// DailyRate is the rental price per day. Kept as a decimal so
	// currency values survive the remote round-trip without float drift.
	DailyRate decimal.Decimal

	Active bool

	// ImageAssetID references a bundled placeholder image, when set.
	ImageAssetID *int

	// ImageURL is either a local file URI (not yet migrated) or a stable
	// https:// URL in the remote object store (migrated).
	ImageURL *string
}

// ImageMigrated reports whether the vehicle's image already lives in the
// remote object store.
func (v *Vehicle) ImageMigrated() bool {
	return v.ImageURL != nil && strings.HasPrefix(*v.ImageURL, "https://")
}

// ValidPlate reports whether plate matches the required AAA### format.
func ValidPlate(plate string) bool {
	return PlatePattern.MatchString(plate)
}
