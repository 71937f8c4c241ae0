package report

import (
	"sort"
	"time"

	"axiapac.com/iclock/iclock/model"
)

// DailyRecord is the first and last punch of one user on one day.
type DailyRecord struct {
	SN           string
	PIN          string
	Date         string
	From         time.Time
	To           time.Time
	Transactions []model.Transaction
}

// GroupTransactions groups punches by device, PIN and local date in loc.
// Punches without a timestamp are skipped. Records are ordered by SN, PIN
// and date.
func GroupTransactions(sn string, transactions []model.Transaction, loc *time.Location) []DailyRecord {
	grouped := make(map[string]DailyRecord)

	for _, t := range transactions {
		ts, ok := t.CorrectDatetime(loc)
		if !ok {
			continue
		}
		date := ts.Format("2006-01-02")
		key := sn + "|" + t.PIN + "|" + date
		dr, exists := grouped[key]

		if !exists {
			grouped[key] = DailyRecord{
				SN:           sn,
				PIN:          t.PIN,
				Date:         date,
				From:         ts,
				To:           ts,
				Transactions: []model.Transaction{t},
			}
			continue
		}
		if ts.Before(dr.From) {
			dr.From = ts
		}
		if ts.After(dr.To) {
			dr.To = ts
		}
		dr.Transactions = append(dr.Transactions, t)
		grouped[key] = dr
	}

	records := make([]DailyRecord, 0, len(grouped))
	for _, dr := range grouped {
		records = append(records, dr)
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.SN != b.SN {
			return a.SN < b.SN
		}
		if a.PIN != b.PIN {
			return a.PIN < b.PIN
		}
		return a.Date < b.Date
	})
	return records
}
