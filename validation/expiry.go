package validation

import "time"

// IsValidExpiry parses a card expiry as MMYY and compares it to now at month
// granularity: a card expiring in the current month is still valid.
func IsValidExpiry(expiry string, now time.Time) bool {
	if len(expiry) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if expiry[i] < '0' || expiry[i] > '9' {
			return false
		}
	}

	month := int(expiry[0]-'0')*10 + int(expiry[1]-'0')
	if month < 1 || month > 12 {
		return false
	}
	year := 2000 + int(expiry[2]-'0')*10 + int(expiry[3]-'0')

	if year != now.Year() {
		return year > now.Year()
	}
	return time.Month(month) >= now.Month()
}
