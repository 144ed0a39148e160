package analytics

// InMonthRange reports whether a YYYY-MM month key satisfies the
// inclusive start/end bounds, with empty bounds meaning unbounded. This
// is the same test the trend builders apply to transaction months.
func InMonthRange(month, start, end string) bool {
	return inRange(month, start, end)
}
