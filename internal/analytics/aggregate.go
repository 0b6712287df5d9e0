// Package analytics derives monthly totals and per-roommate statistics from
// the current expense set and the archive of closed months.
package analytics

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/roomsplit/internal/models"
	"github.com/shopspring/decimal"
)

// MonthTotal is the spending recorded in one calendar month.
type MonthTotal struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// RoommateStats summarizes one roommate's spending.
type RoommateStats struct {
	Roommate string          `json:"roommate"`
	Current  decimal.Decimal `json:"current"`
	Total    decimal.Decimal `json:"total"`
	Average  decimal.Decimal `json:"average"`
}

// Report is the analytics view. Months is in chronological order.
type Report struct {
	Months      []MonthTotal    `json:"months"`
	Roommates   []RoommateStats `json:"roommates"`
	TotalMonths int             `json:"totalMonths"`
}

type monthKey struct {
	year  int
	month time.Month
}

// Aggregate builds the Report. Current expenses are bucketed by their own
// dates, archived months by their month date using the stored settlement.
// Several records falling into the same calendar month share one bucket.
//
// The per-roommate average divides the lifetime total by the number of
// elapsed months: every archived month plus the current one when it has
// expenses. With no history the average is zero.
func Aggregate(current []models.Expense, archives []models.ArchivedMonth, roster *models.Roster) Report {
	buckets := make(map[monthKey]decimal.Decimal)
	add := func(t time.Time, v decimal.Decimal) {
		k := monthKey{year: t.Year(), month: t.Month()}
		buckets[k] = buckets[k].Add(v)
	}

	for _, e := range current {
		add(e.Date, e.Amount)
	}
	for _, a := range archives {
		add(a.MonthDate, a.Settlement.Total)
	}

	keys := make([]monthKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	r := Report{Months: make([]MonthTotal, 0, len(keys))}
	for _, k := range keys {
		r.Months = append(r.Months, MonthTotal{Year: k.year, Month: k.month, Total: buckets[k]})
	}

	r.TotalMonths = len(archives)
	if len(current) > 0 {
		r.TotalMonths++
	}

	for _, name := range roster.Names() {
		cur := decimal.Zero
		for _, e := range current {
			if e.Roommate == name {
				cur = cur.Add(e.Amount)
			}
		}

		total := cur
		for _, a := range archives {
			total = total.Add(a.Settlement.SpentBy(name))
		}

		avg := decimal.Zero
		if r.TotalMonths > 0 {
			avg = total.Div(decimal.NewFromInt(int64(r.TotalMonths)))
		}

		r.Roommates = append(r.Roommates, RoommateStats{Roommate: name, Current: cur, Total: total, Average: avg})
	}

	return r
}
