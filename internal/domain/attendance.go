// Package domain defines the business logic for attendance tracking.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/jalali"
)

// ClockLayout is the wall-clock format stored in the check_in/check_out
// columns and echoed back to users.
const ClockLayout = "15:04:05"

var (
	// ErrAlreadyCheckedIn indicates an open record already exists for the
	// user today.
	ErrAlreadyCheckedIn = errors.New("open attendance record already exists for today")
	// ErrNoOpenRecord indicates a checkout matched no open record.
	ErrNoOpenRecord = errors.New("no open attendance record for today")
)

// Record is one check-in/check-out pair for a user on a date.
type Record struct {
	ID         int64
	UserID     int64
	Username   string
	Date       time.Time
	JalaliDate string
	Day        int
	CheckIn    *string
	CheckOut   *string
}

// Repository captures persistence operations on attendance records.
type Repository interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	HasOpen(ctx context.Context, userID int64, date time.Time) (bool, error)
	// CloseOpen sets check_out on the most recent open record for
	// (userID, date) and returns the number of rows affected.
	CloseOpen(ctx context.Context, userID int64, date time.Time, checkOut string) (int64, error)
	ListMonth(ctx context.Context, userID int64, year int, month time.Month) ([]Record, error)
}

// Mark is the outcome of a successful check-in or check-out.
type Mark struct {
	RecordID   int64
	JalaliDate string
	Clock      string
}

// Period identifies the month a report covers.
type Period struct {
	Year        int
	Month       time.Month
	JalaliMonth int
}

// Service orchestrates attendance workflows.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a Service. now supplies the bot's local wall clock.
func NewService(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// CheckIn opens a new attendance record for today. A user with an open
// record is refused with ErrAlreadyCheckedIn; a day has at most one open
// record at a time.
func (s *Service) CheckIn(ctx context.Context, userID int64, username string) (Mark, error) {
	now := s.now()
	date := midnightOf(now)

	open, err := s.repo.HasOpen(ctx, userID, date)
	if err != nil {
		return Mark{}, fmt.Errorf("check open record: %w", err)
	}
	if open {
		return Mark{}, ErrAlreadyCheckedIn
	}

	jd := jalali.FromTime(now).String()
	checkIn := now.Format(ClockLayout)
	stored, err := s.repo.Insert(ctx, Record{
		UserID:     userID,
		Username:   username,
		Date:       date,
		JalaliDate: jd,
		Day:        now.Day(),
		CheckIn:    &checkIn,
	})
	if err != nil {
		return Mark{}, fmt.Errorf("insert attendance record: %w", err)
	}
	return Mark{RecordID: stored.ID, JalaliDate: jd, Clock: checkIn}, nil
}

// CheckOut closes the most recent open record for today. Returns
// ErrNoOpenRecord when nothing was open; that case never reaches the store
// as a failure.
func (s *Service) CheckOut(ctx context.Context, userID int64) (Mark, error) {
	now := s.now()
	date := midnightOf(now)
	checkOut := now.Format(ClockLayout)

	affected, err := s.repo.CloseOpen(ctx, userID, date, checkOut)
	if err != nil {
		return Mark{}, fmt.Errorf("close attendance record: %w", err)
	}
	if affected == 0 {
		return Mark{}, ErrNoOpenRecord
	}
	return Mark{JalaliDate: jalali.FromTime(now).String(), Clock: checkOut}, nil
}

// MonthlyRecords returns the user's records for the current month, ordered
// by date, along with the period used to name the report.
func (s *Service) MonthlyRecords(ctx context.Context, userID int64) ([]Record, Period, error) {
	now := s.now()
	period := Period{
		Year:        now.Year(),
		Month:       now.Month(),
		JalaliMonth: jalali.FromTime(now).Month,
	}
	records, err := s.repo.ListMonth(ctx, userID, period.Year, period.Month)
	if err != nil {
		return nil, period, fmt.Errorf("list monthly records: %w", err)
	}
	return records, period, nil
}

// Duration computes the worked time of a record. ok is false for open or
// incomplete records, which contribute nothing to report totals.
func (r Record) Duration() (time.Duration, bool) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0, false
	}
	in, err := time.Parse(ClockLayout, *r.CheckIn)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(ClockLayout, *r.CheckOut)
	if err != nil {
		return 0, false
	}
	return out.Sub(in), true
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
