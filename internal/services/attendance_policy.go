package services

import "errors"

var ErrPositionRequired = errors.New("position required")

type Position struct {
	Latitude  float64
	Longitude float64
}

// ValidatePosition enforces the "no position, no record" rule: a
// check-in or check-out without a usable device fix writes nothing.
func ValidatePosition(latitude *float64, longitude *float64) (Position, error) {
	if latitude == nil || longitude == nil {
		return Position{}, ErrPositionRequired
	}
	if *latitude < -90 || *latitude > 90 || *longitude < -180 || *longitude > 180 {
		return Position{}, ErrPositionRequired
	}
	return Position{Latitude: *latitude, Longitude: *longitude}, nil
}
