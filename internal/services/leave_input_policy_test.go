package services

import (
	"errors"
	"testing"
	"time"
)

func validLeaveInput() LeaveRequestInput {
	return LeaveRequestInput{
		Department: "Engineering",
		LeaveType:  "AnnualLeave",
		Reason:     "Vacation",
		StartDate:  "2026-03-10",
		EndDate:    "2026-03-12",
	}
}

func TestValidateLeaveRequestInput_ChecksRunInFixedOrder(t *testing.T) {
	// An input missing a field AND submitted without a user AND with a
	// reversed range must fail on completeness first.
	input := validLeaveInput()
	input.Reason = ""
	input.StartDate = "2026-03-12"
	input.EndDate = "2026-03-10"

	if _, _, err := ValidateLeaveRequestInput(input, false, time.UTC); !errors.Is(err, ErrLeaveMissingInformation) {
		t.Fatalf("expected ErrLeaveMissingInformation, got %v", err)
	}

	// Complete input without a user fails on the auth guard before the
	// date range is even parsed.
	input = validLeaveInput()
	input.StartDate = "2026-03-12"
	input.EndDate = "2026-03-10"
	if _, _, err := ValidateLeaveRequestInput(input, false, time.UTC); !errors.Is(err, ErrLeaveUserMissing) {
		t.Fatalf("expected ErrLeaveUserMissing, got %v", err)
	}

	if _, _, err := ValidateLeaveRequestInput(input, true, time.UTC); !errors.Is(err, ErrLeaveInvalidDateRange) {
		t.Fatalf("expected ErrLeaveInvalidDateRange, got %v", err)
	}
}

func TestValidateLeaveRequestInput_AcceptsValidInput(t *testing.T) {
	start, end, err := ValidateLeaveRequestInput(validLeaveInput(), true, time.UTC)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-03-10" {
		t.Fatalf("expected start 2026-03-10, got %s", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-03-12" {
		t.Fatalf("expected end 2026-03-12, got %s", got)
	}
}

func TestValidateLeaveRequestInput_SameDayRangeIsValid(t *testing.T) {
	input := validLeaveInput()
	input.EndDate = input.StartDate
	if _, _, err := ValidateLeaveRequestInput(input, true, time.UTC); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidateLeaveRequestInput_TimestampsReduceToCalendarDays(t *testing.T) {
	input := validLeaveInput()
	input.StartDate = "2026-03-10T23:00:00Z"
	input.EndDate = "2026-03-10T01:00:00Z"

	start, end, err := ValidateLeaveRequestInput(input, true, time.UTC)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !start.Equal(end) {
		t.Fatalf("expected same calendar day, got %v and %v", start, end)
	}
}

func TestValidateLeaveRequestInput_RejectsUnknownCodes(t *testing.T) {
	input := validLeaveInput()
	input.LeaveType = "SabbaticalLeave"
	if _, _, err := ValidateLeaveRequestInput(input, true, time.UTC); !errors.Is(err, ErrLeaveUnknownType) {
		t.Fatalf("expected ErrLeaveUnknownType, got %v", err)
	}

	input = validLeaveInput()
	input.Reason = "Birthday"
	if _, _, err := ValidateLeaveRequestInput(input, true, time.UTC); !errors.Is(err, ErrLeaveUnknownReason) {
		t.Fatalf("expected ErrLeaveUnknownReason, got %v", err)
	}
}

func TestValidateLeaveRequestInput_RejectsUnparseableDates(t *testing.T) {
	input := validLeaveInput()
	input.StartDate = "10/03/2026"
	if _, _, err := ValidateLeaveRequestInput(input, true, time.UTC); !errors.Is(err, ErrLeaveInvalidDate) {
		t.Fatalf("expected ErrLeaveInvalidDate, got %v", err)
	}
}
