// Package report renders a user's monthly attendance into an xlsx document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/imanbakhtiari/staff-attendance-telegramBot/internal/domain"
)

// SheetName titles the single worksheet of the report.
const SheetName = "گزارش حضور"

const (
	checkInMissing  = "ورود ثبت نشده"
	checkOutMissing = "خروج ثبت نشده"
	noDuration      = "ندارد"
	totalLabel      = "جمع ساعات کار"
)

var headers = []string{"تاریخ", "روز", "ورود", "خروج", "مدت زمان کار"}

// FileName names the report after the Jalali month and Gregorian year.
func FileName(jalaliMonth, year int) string {
	return fmt.Sprintf("attendance_report_%02d_%d.xlsx", jalaliMonth, year)
}

// Build renders the records into an in-memory workbook: a header row, one
// row per record, a blank separator row and a total row. Only rows with
// both times contribute to the total.
func Build(records []domain.Record) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}

	var totalHours float64
	for i, rec := range records {
		checkIn := checkInMissing
		if rec.CheckIn != nil {
			checkIn = *rec.CheckIn
		}
		checkOut := checkOutMissing
		if rec.CheckOut != nil {
			checkOut = *rec.CheckOut
		}
		duration := noDuration
		if d, ok := rec.Duration(); ok {
			duration = formatDuration(d)
			totalHours += d.Hours()
		}

		values := []interface{}{rec.JalaliDate, rec.Day, checkIn, checkOut, duration}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// One blank row, then the grand total.
	totalRow := len(records) + 3
	if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", totalRow), totalLabel); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(SheetName, fmt.Sprintf("B%d", totalRow), fmt.Sprintf("%.2f", totalHours)); err != nil {
		return nil, err
	}

	if err := f.SetColWidth(SheetName, "A", "E", 18); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}
