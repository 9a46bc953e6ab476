package services

import (
	"errors"
	"testing"
	"time"

	"github.com/wicaksana/hadir/internal/models"
)

type stubAttendanceRepository struct {
	created []models.AttendanceRecord
	latest  *models.AttendanceRecord
	recent  []models.AttendanceRecord
}

func (repo *stubAttendanceRepository) Create(record *models.AttendanceRecord) error {
	record.ID = uint(len(repo.created) + 1)
	repo.created = append(repo.created, *record)
	return nil
}

func (repo *stubAttendanceRepository) ListRecentByUser(userID uint, limit int) ([]models.AttendanceRecord, error) {
	return repo.recent, nil
}

func (repo *stubAttendanceRepository) LatestInRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.AttendanceRecord, bool, error) {
	if repo.latest == nil {
		return models.AttendanceRecord{}, false, nil
	}
	return *repo.latest, true, nil
}

type stubLeaveSource struct {
	recent []models.LeaveRequest
}

func (source *stubLeaveSource) ListRecentByUser(userID uint, limit int) ([]models.LeaveRequest, error) {
	return source.recent, nil
}

func TestRecordEvent_RejectsUnknownKind(t *testing.T) {
	service := NewAttendanceService(&stubAttendanceRepository{}, &stubLeaveSource{}, time.UTC)
	_, err := service.RecordEvent(1, "lunch-break", Position{})
	if !errors.Is(err, ErrAttendanceKindInvalid) {
		t.Fatalf("expected ErrAttendanceKindInvalid, got %v", err)
	}
}

func TestRecordEvent_StoresVerifiedRecordWithCoordinates(t *testing.T) {
	repo := &stubAttendanceRepository{}
	service := NewAttendanceService(repo, &stubLeaveSource{}, time.UTC)

	record, err := service.RecordEvent(1, models.AttendanceCheckIn, Position{Latitude: -6.2, Longitude: 106.8})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if record.Status != models.AttendanceStatusVerified {
		t.Fatalf("expected verified status, got %q", record.Status)
	}
	if record.Location != DefaultAttendanceLocation {
		t.Fatalf("unexpected location %q", record.Location)
	}
	if record.Latitude == nil || *record.Latitude != -6.2 {
		t.Fatalf("unexpected latitude %v", record.Latitude)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one stored record, got %d", len(repo.created))
	}
}

func TestCurrentlyCheckedIn_DerivedFromNewestRecordOfToday(t *testing.T) {
	repo := &stubAttendanceRepository{}
	service := NewAttendanceService(repo, &stubLeaveSource{}, time.UTC)

	checkedIn, err := service.CurrentlyCheckedIn(1, time.Now())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if checkedIn {
		t.Fatal("expected checked out with no records")
	}

	repo.latest = &models.AttendanceRecord{Kind: models.AttendanceCheckIn}
	if checkedIn, _ = service.CurrentlyCheckedIn(1, time.Now()); !checkedIn {
		t.Fatal("expected checked in after a check-in record")
	}

	repo.latest = &models.AttendanceRecord{Kind: models.AttendanceCheckOut}
	if checkedIn, _ = service.CurrentlyCheckedIn(1, time.Now()); checkedIn {
		t.Fatal("expected checked out after a check-out record")
	}
}

func TestDayRange_CoversTheLocalCalendarDay(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 18:30 UTC is already the next day in Jakarta (UTC+7).
	moment := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	start, end := DayRange(moment, jakarta)

	if got := start.Format("2006-01-02 15:04"); got != "2026-03-11 00:00" {
		t.Fatalf("unexpected day start %s", got)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected end to be start+1d, got %v", end)
	}
}
