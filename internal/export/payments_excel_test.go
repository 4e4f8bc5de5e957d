package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/zaban-academy/internal/models"
)

func TestPaymentsWorkbook(t *testing.T) {
	created := time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC)
	payments := []models.Payment{
		{ID: 1, UserID: 7, ContentID: 3, Amount: 250000, Status: "approved", TrackingCode: "TRK-1", CreatedAt: created},
		{ID: 2, UserID: 8, ContentID: 3, Amount: 250000, Status: "pending", TrackingCode: "TRK-2", AdminNotes: "بررسی", CreatedAt: created},
	}

	data, err := PaymentsWorkbook(payments)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, paymentsHeader, rows[0])
	assert.Equal(t, []string{"1", "7", "3", "250000", "approved", "TRK-1"}, rows[1][:6])
	assert.Equal(t, "2024-03-20 10:30:00", rows[1][7])
	assert.Equal(t, "1403/01/01 10:30", rows[1][8])
	assert.Equal(t, "بررسی", rows[2][6])
}

func TestPaymentsWorkbook_Empty(t *testing.T) {
	data, err := PaymentsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestColName(t *testing.T) {
	assert.Equal(t, "A", colName(1))
	assert.Equal(t, "Z", colName(26))
	assert.Equal(t, "AA", colName(27))
	assert.Equal(t, "", colName(0))
}

func TestPaymentsFilename(t *testing.T) {
	assert.Equal(t, "payments_2024-03-20.xlsx", PaymentsFilename(time.Date(2024, 3, 20, 23, 0, 0, 0, time.UTC)))
}
