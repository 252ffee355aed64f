// Package mood normalizes the three bounded diary scores and their tag
// selections into the shape persisted on a diary entry.
package mood

import "fmt"

const (
	ScoreMin = 0
	ScoreMax = 5
)

// Icon is the derived primary mood glyph for an entry.
type Icon string

const (
	IconPositive Icon = "😄" // overall >= 4
	IconNeutral  Icon = "😐" // overall == 3
	IconNegative Icon = "😞" // overall 1..2
	IconUnrated  Icon = ""   // overall 0 or absent
)

// InvalidScoreError reports a score outside [0,5]. The UI is expected to
// pre-clamp, so hitting this is a caller contract violation.
type InvalidScoreError struct {
	Field string
	Value int
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("mood: %s out of range [0,5]: %d", e.Field, e.Value)
}

// Input is the raw form state for one entry's mood. Nil scores mean
// "not rated", same as 0.
type Input struct {
	PositiveScore *int
	NegativeScore *int
	OverallScore  *int
	PositiveTags  []string
	NegativeTags  []string
}

// Payload is the normalized, persistable mood shape.
type Payload struct {
	PositiveScore *int     `json:"positive_score"`
	NegativeScore *int     `json:"negative_score"`
	OverallScore  *int     `json:"overall_score"`
	Tags          []string `json:"mood_tags"`
	Icon          Icon     `json:"mood_icon"`
}

// Normalize validates the scores, maps tag labels through vocab and
// derives the mood icon. Unknown labels are silently dropped; duplicate
// symbols keep their first occurrence only, positive symbols before
// negative ones.
func Normalize(in Input, vocab *Vocabulary) (Payload, error) {
	if err := checkScore("positive_score", in.PositiveScore); err != nil {
		return Payload{}, err
	}
	if err := checkScore("negative_score", in.NegativeScore); err != nil {
		return Payload{}, err
	}
	if err := checkScore("overall_score", in.OverallScore); err != nil {
		return Payload{}, err
	}

	seen := make(map[string]bool)
	tags := make([]string, 0, len(in.PositiveTags)+len(in.NegativeTags))
	collect := func(vocabTags []Tag, labels []string) {
		for _, label := range labels {
			sym, ok := symbolFor(vocabTags, label)
			if !ok || seen[sym] {
				continue
			}
			seen[sym] = true
			tags = append(tags, sym)
		}
	}
	collect(vocab.Positive, in.PositiveTags)
	collect(vocab.Negative, in.NegativeTags)

	return Payload{
		PositiveScore: in.PositiveScore,
		NegativeScore: in.NegativeScore,
		OverallScore:  in.OverallScore,
		Tags:          tags,
		Icon:          IconForScore(in.OverallScore),
	}, nil
}

// IconForScore maps an overall score to its icon. Total: any value,
// including nil and out-of-range ones, yields an icon.
func IconForScore(overall *int) Icon {
	if overall == nil || *overall <= 0 {
		return IconUnrated
	}
	switch {
	case *overall >= 4:
		return IconPositive
	case *overall == 3:
		return IconNeutral
	default:
		return IconNegative
	}
}

func checkScore(field string, v *int) error {
	if v == nil {
		return nil
	}
	if *v < ScoreMin || *v > ScoreMax {
		return &InvalidScoreError{Field: field, Value: *v}
	}
	return nil
}
