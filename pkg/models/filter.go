package models

// FilterMode selects which tasks a listing includes.
type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterToday  FilterMode = "today"
	FilterWeek   FilterMode = "week"
	FilterDone   FilterMode = "done"
	FilterUndone FilterMode = "undone"
)

// ValidFilterMode reports whether m is one of the five known modes.
func ValidFilterMode(m FilterMode) bool {
	switch m {
	case FilterAll, FilterToday, FilterWeek, FilterDone, FilterUndone:
		return true
	}
	return false
}
