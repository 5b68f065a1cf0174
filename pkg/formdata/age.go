package formdata

import "time"

// Age computes a calendar age in whole years as of now. The year difference is
// decremented by one when the birthday has not yet occurred in the current
// year. Both times are interpreted in their own local representation; no
// timezone normalisation happens here.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
