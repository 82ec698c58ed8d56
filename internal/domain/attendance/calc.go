package attendance

// SplitDailyHours splits a day's final worked hours into the ordinary bucket
// (capped at the 8-hour threshold) and the overtime bucket.
func SplitDailyHours(finalHours float64) (ordinary, overtime float64) {
	if finalHours <= OrdinaryDailyHours {
		return finalHours, 0
	}
	return OrdinaryDailyHours, finalHours - OrdinaryDailyHours
}
