package printing

import "time"

// Fixed national holidays, month/day. Movable holidays (Carnaval, Corpus
// Christi) are not tracked; the dates produced here feed document prose, not
// payment deadlines.
var fixedHolidays = map[[2]int]bool{
	{1, 1}:   true, // Confraternização Universal
	{4, 21}:  true, // Tiradentes
	{5, 1}:   true, // Dia do Trabalho
	{9, 7}:   true, // Independência
	{10, 12}: true, // Nossa Senhora Aparecida
	{11, 2}:  true, // Finados
	{11, 15}: true, // Proclamação da República
	{12, 25}: true, // Natal
}

// IsBusinessDay reports whether d is neither a weekend nor a fixed holiday.
func IsBusinessDay(d time.Time) bool {
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	return !fixedHolidays[[2]int{int(d.Month()), d.Day()}]
}

// SubtractBusinessDays walks back n business days from d
func SubtractBusinessDays(d time.Time, n int) time.Time {
	result := d
	for remaining := n; remaining > 0; {
		result = result.AddDate(0, 0, -1)
		if IsBusinessDay(result) {
			remaining--
		}
	}
	return result
}

// DocumentDate is the formal date stamped on generated documents: two
// business days before the payment date.
func DocumentDate(paymentDate time.Time) time.Time {
	return SubtractBusinessDays(paymentDate, 2)
}

// PriceResearchDate is the date attributed to the price survey: fifteen
// business days before the payment date, so the research plausibly precedes
// the whole procurement.
func PriceResearchDate(paymentDate time.Time) time.Time {
	return SubtractBusinessDays(paymentDate, 15)
}

// MeetingTime returns the session time for the selection meeting. Alternating
// by day of month keeps generated documents from all carrying the same hour.
func MeetingTime(date time.Time) string {
	if date.Day()%2 == 0 {
		return "15:30"
	}
	return "09:00"
}
