package mood

// Tag pairs a human label with the single-glyph symbol stored on entries.
type Tag struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

// Vocabulary holds the fixed ordered tag lists for good and bad mood
// causes. Load once, pass by reference, never mutate at runtime.
type Vocabulary struct {
	Positive []Tag `json:"positive"`
	Negative []Tag `json:"negative"`
}

var defaultVocab = Vocabulary{
	Positive: []Tag{
		{Label: "ของกินอร่อย", Symbol: "🍜"},
		{Label: "งานเสร็จ", Symbol: "✅"},
		{Label: "พักผ่อน", Symbol: "🛌"},
		{Label: "แฟนน่ารัก", Symbol: "💖"},
		{Label: "ออกกำลังกาย", Symbol: "💪"},
	},
	Negative: []Tag{
		{Label: "รถติด", Symbol: "🚗"},
		{Label: "โดนดุ", Symbol: "😓"},
		{Label: "นอนน้อย", Symbol: "😴"},
		{Label: "ป่วย", Symbol: "🤒"},
		{Label: "ทะเลาะกัน", Symbol: "⚡"},
		{Label: "งานเดือด", Symbol: "🔥"},
	},
}

// DefaultVocabulary returns the built-in tag tables.
func DefaultVocabulary() *Vocabulary { return &defaultVocab }

// symbolFor looks label up in tags. Unknown labels return "", false;
// the vocabulary evolves independently of historical entries, so callers
// drop unknown labels instead of erroring.
func symbolFor(tags []Tag, label string) (string, bool) {
	for _, t := range tags {
		if t.Label == label {
			return t.Symbol, true
		}
	}
	return "", false
}
