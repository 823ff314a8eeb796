// Package view contains the pure projections that flatten and summarize
// stored entities for consumers. Nothing in here touches storage.
package view

import "time"

// Age returns the age of someone born on dob as of asOf, using calendar
// anniversaries: the year difference, minus one if the birthday has not
// yet occurred in asOf's year. Callers must pass the game clock date and
// never cache the result across a clock advance.
func Age(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	if asOf.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

// HasBirthdayOn compares month and day only, ignoring the year.
func HasBirthdayOn(dob, date time.Time) bool {
	return dob.Month() == date.Month() && dob.Day() == date.Day()
}
