package service

import (
	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/helpers/dbtime"
)

// NextBillingDate advances current by one billing period.
// An unrecognised frequency leaves the date unchanged.
func NextBillingDate(current dbtime.Date, frequency string) dbtime.Date {
	switch frequency {
	case constants.FrequencyMonthly:
		return dbtime.AddMonths(current, 1)
	case constants.FrequencyQuarterly:
		return dbtime.AddMonths(current, 3)
	case constants.FrequencyYearly:
		return dbtime.AddYears(current, 1)
	default:
		return current
	}
}
