package wire

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"fleetsync/internal/models"
)

// EncodeVehicle maps a vehicle record to its remote item. ImageURL and
// ImageAssetID are written only when present.
func EncodeVehicle(v models.Vehicle) Item {
	item := Item{
		"plate":     str(v.Plate),
		"brand":     str(v.Brand),
		"year":      num(strconv.Itoa(v.Year)),
		"color":     str(v.Color),
		"dailyRate": num(v.DailyRate.String()),
		"active":    boolean(v.Active),
	}
	if v.ImageURL != nil {
		item["imageURL"] = str(*v.ImageURL)
	}
	if v.ImageAssetID != nil {
		item["imageAssetID"] = num(strconv.Itoa(*v.ImageAssetID))
	}
	return item
}

// DecodeVehicle maps a remote item back to a vehicle record. Missing optional
// attributes decode as absent, never as zero values.
func DecodeVehicle(item Item) (models.Vehicle, error) {
	var v models.Vehicle
	var err error

	if v.Plate, err = getS(item, "plate"); err != nil {
		return models.Vehicle{}, err
	}
	if v.Brand, err = getS(item, "brand"); err != nil {
		return models.Vehicle{}, err
	}
	if v.Year, err = getInt(item, "year"); err != nil {
		return models.Vehicle{}, err
	}
	if v.Color, err = getS(item, "color"); err != nil {
		return models.Vehicle{}, err
	}

	rate, err := getN(item, "dailyRate")
	if err != nil {
		return models.Vehicle{}, err
	}
	if v.DailyRate, err = decimal.NewFromString(rate); err != nil {
		return models.Vehicle{}, fmt.Errorf("attribute %q: %w", "dailyRate", err)
	}

	if v.Active, err = getBool(item, "active"); err != nil {
		return models.Vehicle{}, err
	}

	if _, ok := item["imageURL"]; ok {
		url, err := getS(item, "imageURL")
		if err != nil {
			return models.Vehicle{}, err
		}
		v.ImageURL = &url
	}
	if _, ok := item["imageAssetID"]; ok {
		id, err := getInt(item, "imageAssetID")
		if err != nil {
			return models.Vehicle{}, err
		}
		v.ImageAssetID = &id
	}

	return v, nil
}

// VehicleKey builds the primary-key item used for remote deletes.
func VehicleKey(plate string) Item {
	return Item{"plate": str(plate)}
}
