package payment

import (
	"fmt"
	"time"

	paymenterrors "go-timekeep/internal/payment/errors"
)

const (
	FilterDaily   = "daily"
	FilterWeekly  = "weekly"
	FilterMonthly = "monthly"
)

// GroupRecords sums amounts per calendar bucket. Bucket order follows the
// input order (the repo returns records most-recent-first), and buckets
// with no records simply never appear.
func GroupRecords(records []PaymentRecord, filter string) ([]Bucket, error) {
	var order []string
	totals := make(map[string]int64, len(records))

	for i := range records {
		label, err := bucketLabel(filter, records[i].Date)
		if err != nil {
			return nil, err
		}
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}
		totals[label] += records[i].AmountCents
	}

	buckets := make([]Bucket, len(order))
	for i, label := range order {
		buckets[i] = Bucket{Label: label, AmountCents: totals[label]}
	}
	return buckets, nil
}

func bucketLabel(filter string, date time.Time) (string, error) {
	switch filter {
	case FilterDaily:
		return date.Format("2006-01-02"), nil
	case FilterWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week), nil
	case FilterMonthly:
		return date.Format("2006-01"), nil
	default:
		return "", paymenterrors.ErrInvalidFilter
	}
}

// Reversed returns a chronological copy of most-recent-first buckets.
func Reversed(buckets []Bucket) []Bucket {
	out := make([]Bucket, len(buckets))
	for i := range buckets {
		out[len(buckets)-1-i] = buckets[i]
	}
	return out
}
