package services

import (
	"errors"
	"testing"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestValidatePosition_RequiresBothCoordinates(t *testing.T) {
	testCases := []struct {
		name      string
		latitude  *float64
		longitude *float64
	}{
		{"both nil", nil, nil},
		{"missing longitude", floatPtr(-6.2), nil},
		{"missing latitude", nil, floatPtr(106.8)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := ValidatePosition(testCase.latitude, testCase.longitude); !errors.Is(err, ErrPositionRequired) {
				t.Fatalf("expected ErrPositionRequired, got %v", err)
			}
		})
	}
}

func TestValidatePosition_RejectsOutOfRangeCoordinates(t *testing.T) {
	if _, err := ValidatePosition(floatPtr(91), floatPtr(0)); !errors.Is(err, ErrPositionRequired) {
		t.Fatalf("expected ErrPositionRequired for latitude 91, got %v", err)
	}
	if _, err := ValidatePosition(floatPtr(0), floatPtr(-181)); !errors.Is(err, ErrPositionRequired) {
		t.Fatalf("expected ErrPositionRequired for longitude -181, got %v", err)
	}
}

func TestValidatePosition_AcceptsJakartaFix(t *testing.T) {
	position, err := ValidatePosition(floatPtr(-6.1754), floatPtr(106.8272))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if position.Latitude != -6.1754 || position.Longitude != 106.8272 {
		t.Fatalf("unexpected position: %+v", position)
	}
}
