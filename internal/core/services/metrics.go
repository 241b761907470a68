package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entriesRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fund_ledger_entries_recorded_total",
		Help: "Ledger entries recorded, by direction and fund source",
	}, []string{"direction", "fund_source"})

	withdrawalsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fund_ledger_withdrawals_rejected_total",
		Help: "Withdrawals rejected for insufficient balance, by fund source",
	}, []string{"fund_source"})

	entriesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fund_ledger_entries_deleted_total",
		Help: "Ledger entries moved to the deleted history",
	})

	entriesPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fund_ledger_entries_purged_total",
		Help: "Deleted entries permanently purged",
	})
)
