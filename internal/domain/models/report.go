package models

import "time"

// SummarySnapshot is the weekly business summary persisted to MongoDB.
// Stored holds the maintained summary table, Derived the figures recomputed
// from the transactions of the period; the two are not reconciled.
type SummarySnapshot struct {
	Business   Business    `bson:"business" json:"business"`
	PeriodFrom time.Time   `bson:"period_from" json:"period_from"`
	PeriodTo   time.Time   `bson:"period_to" json:"period_to"`
	Stored     SummaryData `bson:"stored" json:"stored"`
	Derived    SummaryData `bson:"derived" json:"derived"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
}
