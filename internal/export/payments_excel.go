package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

const PaymentsSheet = "Payments"

var paymentsHeader = []string{
	"ID", "User", "Content", "Amount", "Status", "Tracking code", "Admin notes", "Created", "Created (Jalali)",
}

// PaymentsWorkbook renders payments as a single-sheet xlsx file.
func PaymentsWorkbook(payments []models.Payment) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", PaymentsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range paymentsHeader {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(PaymentsSheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	for r, p := range payments {
		row := []string{
			strconv.FormatUint(uint64(p.ID), 10),
			strconv.FormatUint(uint64(p.UserID), 10),
			strconv.FormatUint(uint64(p.ContentID), 10),
			strconv.FormatInt(p.Amount, 10),
			p.Status,
			p.TrackingCode,
			p.AdminNotes,
			p.CreatedAt.Format(time.DateTime),
			jalali(p.CreatedAt),
		}
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(PaymentsSheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := ApplyDefaultExcelFormatting(f, PaymentsSheet); err != nil {
		return nil, fmt.Errorf("format sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// PaymentsFilename is the attachment name for an export taken at t.
func PaymentsFilename(t time.Time) string {
	return fmt.Sprintf("payments_%s.xlsx", t.Format("2006-01-02"))
}

func jalali(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	pt := ptime.New(t)
	return fmt.Sprintf("%04d/%02d/%02d %02d:%02d", pt.Year(), int(pt.Month()), pt.Day(), t.Hour(), t.Minute())
}
