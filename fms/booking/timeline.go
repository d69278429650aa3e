package booking

import "time"

type TimelineEvent struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// Timeline lists the booking milestones in order with their completion state.
func Timeline(b Booking) []TimelineEvent {
	registered := b.BookingDate
	if registered == "" && !b.CreatedAt.IsZero() {
		registered = b.CreatedAt.Format(time.DateOnly)
	}

	requested := b.Status != StatusDraft && b.RequestedDate != ""
	if b.Status == StatusConfirmed || b.Status == StatusRejected {
		requested = true
	}

	return []TimelineEvent{
		{Key: "registered", Label: "등록", Date: registered, Completed: true},
		{Key: "requested", Label: "B/R 요청", Date: b.RequestedDate, Completed: requested},
		{Key: "confirmed", Label: "B/C 확정", Date: b.BCDate, Completed: b.BCNo != ""},
		{Key: "sr_sent", Label: "S/R 전송", Date: b.SRDate, Completed: b.SRNo != ""},
	}
}
