package utils

import "time"

func CalculateAge(dateOfBirth, now time.Time) int {
	if dateOfBirth.IsZero() {
		return 0
	}

	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}

func FormatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}

func FormatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return FormatDate(*value)
}
