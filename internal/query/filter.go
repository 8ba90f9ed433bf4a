package query

// Filter is the primary view selector partitioning tasks by lifecycle and
// temporal state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterToday     Filter = "today"
	FilterUpcoming  Filter = "upcoming"
	FilterCompleted Filter = "completed"
	FilterDeleted   Filter = "deleted"
)

// ParseFilter maps a string to a Filter. Unknown values fall back to
// FilterAll with ok=false so callers can reject or ignore as they prefer.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case FilterAll, FilterActive, FilterToday, FilterUpcoming, FilterCompleted, FilterDeleted:
		return Filter(s), true
	case "":
		return FilterAll, true
	default:
		return FilterAll, false
	}
}
