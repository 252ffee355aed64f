package model

// Status is the closed set of activity states.
type Status string

const (
	StatusDone       Status = "done"
	StatusInProgress Status = "in_progress"
	StatusPending    Status = "pending"
	StatusCancelled  Status = "cancelled"
)

// StatusStyle is the render info for one status: the summary symbol, the
// Thai label and the color token used by clients.
type StatusStyle struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Style returns the render info for s. The mapping is total: any value
// outside the known set renders as the cancelled/other style.
func (s Status) Style() StatusStyle {
	switch s {
	case StatusDone:
		return StatusStyle{Symbol: "✅", Label: "เสร็จแล้ว", Color: "#52c41a"}
	case StatusInProgress:
		return StatusStyle{Symbol: "🟧", Label: "กำลังทำ", Color: "#faad14"}
	case StatusPending:
		return StatusStyle{Symbol: "⬜", Label: "ยังไม่เริ่ม", Color: "#595959"}
	default:
		return StatusStyle{Symbol: "⭕", Label: "ข้าม/ยกเลิก", Color: "#ff4d4f"}
	}
}

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	switch s {
	case StatusDone, StatusInProgress, StatusPending, StatusCancelled:
		return true
	}
	return false
}
