package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aptfee_backend/internals/helpers/dbtime"
)

func TestNextBillingDate(t *testing.T) {
	cases := []struct {
		from      dbtime.Date
		frequency string
		want      string
	}{
		{dbtime.NewDate(2024, time.January, 15), "monthly", "2024-02-15"},
		{dbtime.NewDate(2024, time.January, 31), "quarterly", "2024-04-30"},
		{dbtime.NewDate(2024, time.February, 29), "yearly", "2025-02-28"},
		{dbtime.NewDate(2024, time.March, 1), "monthly", "2024-04-01"},
		{dbtime.NewDate(2024, time.March, 1), "weekly", "2024-03-01"},
		{dbtime.NewDate(2024, time.March, 1), "", "2024-03-01"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NextBillingDate(tc.from, tc.frequency).String(), "%s %s", tc.from, tc.frequency)
	}
}
