// file: internals/features/billing/reports/service/aging_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestBucketAge(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "0-30"},
		{30, "0-30"},
		{31, "31-60"},
		{60, "31-60"},
		{61, "61-90"},
		{90, "61-90"},
		{91, "90+"},
		{400, "90+"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BucketAge(tc.days), "days=%d", tc.days)
	}
}

func TestBuildAgingReport(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rows := []AgingRow{
		{InvoiceID: uuid.New(), BilledAt: now.AddDate(0, 0, -45), Balance: d("50")},
		{InvoiceID: uuid.New(), BilledAt: now.AddDate(0, 0, -10), Balance: d("120")},
		{InvoiceID: uuid.New(), BilledAt: now.AddDate(0, 0, -40), Balance: d("30")},
		{InvoiceID: uuid.New(), BilledAt: now.AddDate(0, 0, -200), Balance: d("500")},
	}

	got := BuildAgingReport(rows, now)
	require.Len(t, got, 4)

	byBucket := map[string]AgingBucket{}
	for _, b := range got {
		byBucket[b.Bucket] = b
	}

	assert.Equal(t, int64(1), byBucket["0-30"].Count)
	assert.True(t, byBucket["0-30"].Amount.Equal(d("120")))

	assert.Equal(t, int64(2), byBucket["31-60"].Count)
	assert.True(t, byBucket["31-60"].Amount.Equal(d("80")))

	assert.Equal(t, int64(0), byBucket["61-90"].Count)
	assert.True(t, byBucket["61-90"].Amount.IsZero())

	assert.Equal(t, int64(1), byBucket["90+"].Count)
	assert.True(t, byBucket["90+"].Amount.Equal(d("500")))
}

func TestBuildAgingReport_EmptyStillHasAllBuckets(t *testing.T) {
	got := BuildAgingReport(nil, time.Now())
	require.Len(t, got, 4)
	for i, label := range []string{"0-30", "31-60", "61-90", "90+"} {
		assert.Equal(t, label, got[i].Bucket)
		assert.Zero(t, got[i].Count)
		assert.True(t, got[i].Amount.IsZero())
	}
}

func TestBuildAgingReport_FutureBilledAtClampsToFirstBucket(t *testing.T) {
	now := time.Now()
	rows := []AgingRow{
		{InvoiceID: uuid.New(), BilledAt: now.Add(48 * time.Hour), Balance: d("10")},
	}
	got := BuildAgingReport(rows, now)
	assert.Equal(t, int64(1), got[0].Count)
	assert.True(t, got[0].Amount.Equal(d("10")))
}
