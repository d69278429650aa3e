package booking

type Status string

const (
	StatusDraft     Status = "draft"
	StatusRequested Status = "requested"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusDraft, StatusRequested, StatusConfirmed, StatusRejected, StatusCancelled}

func (s Status) Valid() bool {
	_, ok := statusMeta[s]
	return ok
}

// Editable reports whether field edits are allowed in s.
func (s Status) Editable() bool {
	return s == StatusDraft || s == StatusRequested
}

// StatusMeta is display metadata for list badges and detail headers.
type StatusMeta struct {
	Status  Status `json:"status"`
	Label   string `json:"label"`
	Color   string `json:"color"`
	BgColor string `json:"bg_color"`
}

var statusMeta = map[Status]StatusMeta{
	StatusDraft:     {Status: StatusDraft, Label: "작성중", Color: "#6B7280", BgColor: "rgba(107, 114, 128, 0.1)"},
	StatusRequested: {Status: StatusRequested, Label: "B/R 요청", Color: "#2563EB", BgColor: "rgba(37, 99, 235, 0.1)"},
	StatusConfirmed: {Status: StatusConfirmed, Label: "B/C 완료", Color: "#059669", BgColor: "rgba(5, 150, 105, 0.1)"},
	StatusRejected:  {Status: StatusRejected, Label: "거절", Color: "#DC2626", BgColor: "rgba(220, 38, 38, 0.1)"},
	StatusCancelled: {Status: StatusCancelled, Label: "취소", Color: "#9CA3AF", BgColor: "rgba(156, 163, 175, 0.1)"},
}

// Meta returns the metadata for s, or a neutral entry for an unknown status.
func Meta(s Status) StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return StatusMeta{Status: s, Label: "미정", Color: "#6B7280", BgColor: "#F3F4F6"}
}

func AllMeta() []StatusMeta {
	out := make([]StatusMeta, 0, len(Statuses))
	for _, s := range Statuses {
		out = append(out, statusMeta[s])
	}
	return out
}
