package summary

import (
	"strings"
	"testing"

	"mood-diary/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timep(s string) *string { return &s }

func TestGenerateEmptyReturnsSentinel(t *testing.T) {
	assert.Equal(t, NoActivities, Generate(nil))
	assert.Equal(t, NoActivities, Generate([]model.ActivitySnapshot{}))
}

func TestGenerateOrdersByTimeAllDayLast(t *testing.T) {
	acts := []model.ActivitySnapshot{
		{Title: "A", Status: model.StatusDone, ScheduledTime: timep("09:00:00")},
		{Title: "B", Status: model.StatusPending, ScheduledTime: nil},
		{Title: "C", Status: model.StatusPending, ScheduledTime: timep("08:00:00")},
	}

	// same ordering no matter how the input is permuted
	for _, perm := range [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}} {
		input := []model.ActivitySnapshot{acts[perm[0]], acts[perm[1]], acts[perm[2]]}
		out := Generate(input)
		posC := strings.Index(out, "C")
		posA := strings.Index(out, "A")
		posB := strings.Index(out, "B")
		require.True(t, posC >= 0 && posA >= 0 && posB >= 0, "all titles rendered")
		assert.Less(t, posC, posA, "08:00 before 09:00")
		assert.Less(t, posA, posB, "timed before all-day")
	}
}

func TestGenerateAllDayPreservesInputOrder(t *testing.T) {
	out := Generate([]model.ActivitySnapshot{
		{Title: "first", Status: model.StatusPending},
		{Title: "second", Status: model.StatusPending},
	})
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
}

func TestGenerateDeterministic(t *testing.T) {
	acts := []model.ActivitySnapshot{
		{Title: "วิ่ง", Category: "health", Status: model.StatusDone, ScheduledTime: timep("06:30:00")},
		{Title: "อ่านหนังสือ", Category: "study", Status: model.StatusInProgress},
	}
	assert.Equal(t, Generate(acts), Generate(acts))
}

func TestGenerateLineFormat(t *testing.T) {
	out := Generate([]model.ActivitySnapshot{
		{Title: "ประชุมทีม", Status: model.StatusDone, ScheduledTime: timep("09:30:00")},
		{Title: "ซักผ้า", Status: model.StatusCancelled},
	})

	assert.True(t, strings.HasPrefix(out, "สรุปกิจกรรมในวันนี้:\n\n"))
	assert.True(t, strings.HasSuffix(out, "\nความรู้สึกวันนี้: "))
	assert.Contains(t, out, "✅ 09:30 - ประชุมทีม (เสร็จแล้ว)\n")
	assert.Contains(t, out, "⭕ (ทั้งวัน) - ซักผ้า (ข้าม/ยกเลิก)\n")
}

func TestGenerateStatusSymbols(t *testing.T) {
	out := Generate([]model.ActivitySnapshot{
		{Title: "a", Status: model.StatusDone},
		{Title: "b", Status: model.StatusInProgress},
		{Title: "c", Status: model.StatusPending},
		{Title: "d", Status: model.StatusCancelled},
	})
	for _, sym := range []string{"✅", "🟧", "⬜", "⭕"} {
		assert.Contains(t, out, sym)
	}
}
