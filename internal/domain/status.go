package domain

// StatusPresentation human label and visual emphasis class of a status
type StatusPresentation struct {
	Label string
	Class string
}

var statusPresentations = map[BookingStatus]StatusPresentation{
	StatusPending:   {Label: "Ожидает", Class: "bg-yellow-500"},
	StatusConfirmed: {Label: "Подтверждена", Class: "bg-blue-500"},
	StatusCompleted: {Label: "Завершена", Class: "bg-green-500"},
	StatusCancelled: {Label: "Отменена", Class: "bg-red-500"},
}

// PresentStatus maps a status to its presentation
// Unknown statuses are shown as pending.
func PresentStatus(status BookingStatus) StatusPresentation {
	if p, ok := statusPresentations[status]; ok {
		return p
	}
	return statusPresentations[StatusPending]
}

// StatusFilter selects bookings by status; FilterAll disables filtering
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter accepts "all", an empty string or one of the four statuses
func ParseStatusFilter(value string) (StatusFilter, bool) {
	if value == "" || value == string(FilterAll) {
		return FilterAll, true
	}
	if BookingStatus(value).IsValid() {
		return StatusFilter(value), true
	}
	return "", false
}

// Status returns the status to filter by and false for FilterAll
func (f StatusFilter) Status() (BookingStatus, bool) {
	if f == FilterAll || f == "" {
		return "", false
	}
	return BookingStatus(f), true
}

// Label plural label of the filter for the filter selector
func (f StatusFilter) Label() string {
	switch f {
	case StatusFilter(StatusPending):
		return "Ожидают"
	case StatusFilter(StatusConfirmed):
		return "Подтверждены"
	case StatusFilter(StatusCompleted):
		return "Завершены"
	case StatusFilter(StatusCancelled):
		return "Отменены"
	default:
		return "Все"
	}
}

// StatusCounts aggregate counts over a loaded list of bookings
type StatusCounts struct {
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
	Total     int
}

// CountByStatus classifies each booking by its status
// Bookings with an unknown status only contribute to Total.
func CountByStatus(bookings []Booking) StatusCounts {
	counts := StatusCounts{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case StatusPending:
			counts.Pending++
		case StatusConfirmed:
			counts.Confirmed++
		case StatusCompleted:
			counts.Completed++
		case StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// Of returns the count for one status
func (c StatusCounts) Of(status BookingStatus) int {
	switch status {
	case StatusPending:
		return c.Pending
	case StatusConfirmed:
		return c.Confirmed
	case StatusCompleted:
		return c.Completed
	case StatusCancelled:
		return c.Cancelled
	default:
		return 0
	}
}
