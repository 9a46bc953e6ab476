package services

import (
	"errors"
	"strings"
	"time"

	"github.com/wicaksana/hadir/internal/models"
)

var (
	ErrLeaveMissingInformation = errors.New("missing information")
	ErrLeaveUserMissing        = errors.New("authentication error")
	ErrLeaveInvalidDate        = errors.New("invalid date")
	ErrLeaveInvalidDateRange   = errors.New("invalid date range")
	ErrLeaveUnknownType        = errors.New("unknown leave type")
	ErrLeaveUnknownReason      = errors.New("unknown leave reason")
)

const leaveDateLayout = "2006-01-02"

type LeaveRequestInput struct {
	Department        string
	LeaveType         string
	Reason            string
	StartDate         string
	EndDate           string
	AdditionalDetails string
}

// ValidateLeaveRequestInput runs the submission checks in their fixed
// order, short-circuiting at the first failure: completeness, then the
// authenticated-user guard, then the date range. Dates are reduced to
// calendar-day precision.
func ValidateLeaveRequestInput(input LeaveRequestInput, userPresent bool, location *time.Location) (time.Time, time.Time, error) {
	if strings.TrimSpace(input.Department) == "" ||
		strings.TrimSpace(input.LeaveType) == "" ||
		strings.TrimSpace(input.Reason) == "" ||
		strings.TrimSpace(input.StartDate) == "" ||
		strings.TrimSpace(input.EndDate) == "" {
		return time.Time{}, time.Time{}, ErrLeaveMissingInformation
	}

	if !userPresent {
		return time.Time{}, time.Time{}, ErrLeaveUserMissing
	}

	start, err := parseLeaveDate(input.StartDate, location)
	if err != nil {
		return time.Time{}, time.Time{}, ErrLeaveInvalidDate
	}
	end, err := parseLeaveDate(input.EndDate, location)
	if err != nil {
		return time.Time{}, time.Time{}, ErrLeaveInvalidDate
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrLeaveInvalidDateRange
	}

	if !containsCode(leaveTypeCodeSet, input.LeaveType) {
		return time.Time{}, time.Time{}, ErrLeaveUnknownType
	}
	if !containsCode(leaveReasonCodeSet, input.Reason) {
		return time.Time{}, time.Time{}, ErrLeaveUnknownReason
	}

	return start, end, nil
}

// parseLeaveDate accepts a calendar date or a full timestamp and keeps
// only the calendar day.
func parseLeaveDate(raw string, location *time.Location) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if location == nil {
		location = time.Local
	}

	if parsed, err := time.ParseInLocation(leaveDateLayout, value, location); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	local := parsed.In(location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location), nil
}

func containsCode(set map[string]struct{}, code string) bool {
	_, ok := set[strings.TrimSpace(code)]
	return ok
}

var leaveTypeCodeSet = codeSet(models.LeaveTypeCodes())
var leaveReasonCodeSet = codeSet(models.LeaveReasonCodes())

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}
