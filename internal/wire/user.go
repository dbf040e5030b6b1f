package wire

import (
	"strconv"

	"fleetsync/internal/models"
)

// EncodeUser maps a user record to its remote item.
func EncodeUser(u models.User) Item {
	return Item{
		"id":           num(strconv.FormatInt(u.ID, 10)),
		"name":         str(u.Name),
		"passwordHash": str(u.PasswordHash),
		"isAdmin":      boolean(u.IsAdmin),
	}
}

// DecodeUser maps a remote item back to a user record.
func DecodeUser(item Item) (models.User, error) {
	var u models.User

	raw, err := getN(item, "id")
	if err != nil {
		return models.User{}, err
	}
	if u.ID, err = strconv.ParseInt(raw, 10, 64); err != nil {
		return models.User{}, err
	}

	if u.Name, err = getS(item, "name"); err != nil {
		return models.User{}, err
	}
	if u.PasswordHash, err = getS(item, "passwordHash"); err != nil {
		return models.User{}, err
	}
	if u.IsAdmin, err = getBool(item, "isAdmin"); err != nil {
		return models.User{}, err
	}

	return u, nil
}
