// Package insight turns aggregate statistics into short Thai-language
// analytics strings by evaluating fixed, ordered threshold rules. All
// functions are pure and deterministic; missing optional fields silence
// their rule instead of erroring.
package insight

import (
	"fmt"
	"math"
)

// Build runs every rule family over ctx.
func Build(ctx Context) Report {
	return Report{
		Mood:        MoodInsights(ctx.Mood, ctx.Community),
		Completion:  CompletionInsights(ctx.Completion),
		LifeBalance: LifeBalanceInsights(ctx.LifeBalance),
		CrossMetric: MoodCompletionLink(ctx.Mood, ctx.Completion),
		Community:   CommunityInsights(ctx.Community),
	}
}

// MoodInsights evaluates the personal mood rules. The four average
// buckets partition [0,5], so exactly one of them fires.
func MoodInsights(me *MoodStats, community *CommunityStats) []string {
	if me == nil {
		return nil
	}
	var msgs []string

	switch {
	case me.Average >= 4.2:
		msgs = append(msgs, "✨ ช่วงนี้ภาพรวมอารมณ์คุณดีมาก อยู่ในโซนเขียว")
	case me.Average >= 3.2:
		msgs = append(msgs, "😊 อารมณ์คุณอยู่ในระดับปานกลางถึงดี")
	case me.Average >= 2.2:
		msgs = append(msgs, "😐 ช่วงนี้อารมณ์เริ่มตกลงมาหน่อย ลองพักผ่อนมากขึ้น")
	default:
		msgs = append(msgs, "😞 อารมณ์คุณค่อนข้างต่ำต่อเนื่อง ลองหาใครสักคนคุยด้วยดูนะ")
	}

	if me.TrendDelta > 0.3 {
		msgs = append(msgs, "📈 ดีขึ้นจากช่วงก่อนอย่างชัดเจน")
	} else if me.TrendDelta < -0.3 {
		msgs = append(msgs, "📉 ลดลงจากช่วงก่อนค่อนข้างเยอะ ลองสังเกตว่าช่วงนี้เกิดอะไรขึ้นบ่อย ๆ")
	}

	if me.Stddev != nil {
		if *me.Stddev < 0.5 {
			msgs = append(msgs, "🟢 อารมณ์ของคุณค่อนข้างนิ่งและคงที่")
		} else if *me.Stddev > 1.0 {
			msgs = append(msgs, "🎢 อารมณ์ขึ้นลงแรงในช่วงนี้ ลองหากิจกรรมที่ช่วยบาลานซ์ดู")
		}
	}

	if community != nil && community.PercentileOfMe != nil {
		p := *community.PercentileOfMe
		if p >= 0.8 {
			msgs = append(msgs, "👑 คุณมีอารมณ์ดีกว่าผู้ใช้อื่นส่วนใหญ่ (Top 20%)")
		} else if p <= 0.2 {
			msgs = append(msgs, "💡 อารมณ์คุณต่ำกว่าค่าเฉลี่ยของชุมชนพอสมควร (Bottom 20%)")
		} else if p >= 0.5 {
			msgs = append(msgs, "➡️ อารมณ์คุณใกล้เคียงกับเฉลี่ยของชุมชน")
		}
	}

	return msgs
}

// CompletionInsights evaluates the discipline rules.
func CompletionInsights(c *CompletionStats) []string {
	if c == nil {
		return nil
	}
	var msgs []string

	switch {
	case c.OverallRate >= 80:
		msgs = append(msgs, "🏆 คุณทำเป้าหมายสำเร็จเกิน 80% วินัยดีมาก")
	case c.OverallRate >= 60:
		msgs = append(msgs, "💪 คุณทำเป้าหมายสำเร็จราว 60-80% ดีทีเดียว")
	case c.OverallRate >= 50:
		msgs = append(msgs, "📊 คุณทำเป้าหมายสำเร็จประมาณครึ่งหนึ่ง ยังมีช่องให้พัฒนาอีกนิด")
	default:
		msgs = append(msgs, "⚠️ อัตราสำเร็จยังต่ำ ลองลดจำนวนงานต่อวันให้เหมาะกับพลังงานจริง")
	}

	if c.StreakBest >= 5 {
		msgs = append(msgs, fmt.Sprintf("🔥 คุณเคยทำงานครบติดกัน %d วัน ลองทำลายสถิติดูไหม", c.StreakBest))
	} else if c.StreakBest >= 3 {
		msgs = append(msgs, fmt.Sprintf("⭐ เคยทำสำเร็จติดกัน %d วัน ความพยายามดีมาก", c.StreakBest))
	}

	return msgs
}

// LifeBalanceInsights evaluates the category-distribution rules. Backend
// warnings are passed through first, then the local thresholds.
func LifeBalanceInsights(lb *LifeBalanceStats) []string {
	if lb == nil {
		return nil
	}
	var msgs []string
	msgs = append(msgs, lb.Warnings...)

	var work, health, social *CategoryShare
	for i := range lb.Data {
		switch lb.Data[i].Key {
		case "work":
			work = &lb.Data[i]
		case "health":
			health = &lb.Data[i]
		case "social":
			social = &lb.Data[i]
		}
	}

	if work != nil && work.Percentage > 60 {
		msgs = append(msgs, "⚠️ หมวดงานใช้เวลามากกว่า 60% ของทั้งหมด ลองกันเวลาพักผ่อนเพิ่ม")
	}
	if health != nil && health.Percentage < 10 {
		msgs = append(msgs, "🏥 หมวดสุขภาพมีสัดส่วนน้อยมาก ลองเพิ่มกิจกรรมดูแลตัวเองสักเล็กน้อย")
	}
	if social != nil && social.Percentage < 5 {
		msgs = append(msgs, "👥 กิจกรรมทางสังคมค่อนข้างน้อย ลองหาเวลาเพื่อความสัมพันธ์")
	}
	if work != nil && work.Percentage <= 50 && health != nil && health.Percentage >= 10 {
		msgs = append(msgs, "✅ สมดุลชีวิตของคุณดูดี ชีวิตค่อนข้างสมดุล")
	}

	return msgs
}

// MoodCompletionLink inspects the joint condition of mood and completion.
// Partial input yields no insight at all, never a partial one.
func MoodCompletionLink(me *MoodStats, c *CompletionStats) []string {
	if me == nil || c == nil {
		return nil
	}
	var msgs []string
	mood, rate := me.Average, c.OverallRate

	switch {
	case mood >= 3.5 && rate >= 70:
		msgs = append(msgs, "🌟 อารมณ์ดี + งานสำเร็จ = สัญญาณดีของสมดุลชีวิต")
	case mood >= 3.5 && rate < 40:
		msgs = append(msgs, "🎯 อารมณ์ดี แต่ทำงานน้อย - อาจเพราะพักได้เพียงพอ")
	case mood < 2.5 && rate >= 70:
		msgs = append(msgs, "⚡ ทำงานสำเร็จมากแต่อารมณ์ต่ำ - อาจจากความเหนื่อย ลองพักดู")
	case mood < 2.5 && rate < 40:
		msgs = append(msgs, "💔 ทั้งอารมณ์ต่ำและงานไม่สำเร็จ - ลองแยกปัญหาว่ามาจากไหน")
	}

	return msgs
}

// CommunityInsights evaluates the all-user mood rules.
func CommunityInsights(cm *CommunityStats) []string {
	if cm == nil {
		return nil
	}
	var msgs []string

	switch {
	case cm.Average >= 3.8:
		msgs = append(msgs, "☀️ ชุมชนอยู่ในอารมณ์ดี")
	case cm.Average >= 3.0:
		msgs = append(msgs, "😐 ชุมชนมีอารมณ์ปานกลาง")
	default:
		msgs = append(msgs, "😔 ชุมชนอยู่ในอารมณ์ค่อนข้างต่ำ")
	}

	if cm.Stddev != nil {
		if *cm.Stddev < 0.6 {
			msgs = append(msgs, "🎯 ความรู้สึกของชุมชนค่อนข้างเหมือนกัน")
		} else if *cm.Stddev > 1.0 {
			msgs = append(msgs, "🌈 ความรู้สึกของชุมชนค่อนข้างแตกต่างกัน")
		}
	}

	return msgs
}

// PercentileText renders a 0..1 percentile as a Thai Top-N% line, or ""
// when the percentile is unknown.
func PercentileText(p *float64) string {
	if p == nil {
		return ""
	}
	percent := int(math.Round(*p * 100))
	return fmt.Sprintf("คุณอยู่ใน Top %d%% ของอารมณ์รวมทั้งหมด", 100-percent)
}
