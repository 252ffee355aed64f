package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestNormalizeScoreOutOfRange(t *testing.T) {
	vocab := DefaultVocabulary()

	_, err := Normalize(Input{PositiveScore: intp(6)}, vocab)
	require.Error(t, err)
	var scoreErr *InvalidScoreError
	require.ErrorAs(t, err, &scoreErr)
	assert.Equal(t, "positive_score", scoreErr.Field)
	assert.Equal(t, 6, scoreErr.Value)

	_, err = Normalize(Input{NegativeScore: intp(-1)}, vocab)
	require.ErrorAs(t, err, &scoreErr)
	assert.Equal(t, "negative_score", scoreErr.Field)
}

func TestNormalizeZeroMeansUnrated(t *testing.T) {
	p, err := Normalize(Input{PositiveScore: intp(0)}, DefaultVocabulary())
	require.NoError(t, err)
	require.NotNil(t, p.PositiveScore)
	assert.Equal(t, 0, *p.PositiveScore)
	assert.Equal(t, IconUnrated, p.Icon)
}

func TestNormalizeTagMapping(t *testing.T) {
	p, err := Normalize(Input{
		PositiveTags: []string{"งานเสร็จ", "พักผ่อน"},
		NegativeTags: []string{"รถติด", "นอนน้อย"},
	}, DefaultVocabulary())
	require.NoError(t, err)
	assert.Equal(t, []string{"✅", "🛌", "🚗", "😴"}, p.Tags)
}

func TestNormalizeDropsUnknownLabels(t *testing.T) {
	p, err := Normalize(Input{
		PositiveTags: []string{"ไม่มีในระบบ", "งานเสร็จ"},
		NegativeTags: []string{"ก็ไม่มี"},
	}, DefaultVocabulary())
	require.NoError(t, err)
	assert.Equal(t, []string{"✅"}, p.Tags)
}

func TestNormalizeDedupKeepsFirstOccurrence(t *testing.T) {
	p, err := Normalize(Input{
		PositiveTags: []string{"งานเสร็จ", "งานเสร็จ", "ออกกำลังกาย"},
	}, DefaultVocabulary())
	require.NoError(t, err)
	assert.Equal(t, []string{"✅", "💪"}, p.Tags)
}

func TestIconForScore(t *testing.T) {
	cases := []struct {
		name  string
		score *int
		want  Icon
	}{
		{"nil is unrated", nil, IconUnrated},
		{"zero is unrated", intp(0), IconUnrated},
		{"one is negative", intp(1), IconNegative},
		{"two is negative", intp(2), IconNegative},
		{"three is neutral", intp(3), IconNeutral},
		{"four is positive", intp(4), IconPositive},
		{"five is positive", intp(5), IconPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IconForScore(tc.score))
		})
	}
}

func TestNormalizeIconFollowsOverall(t *testing.T) {
	p, err := Normalize(Input{OverallScore: intp(4)}, DefaultVocabulary())
	require.NoError(t, err)
	assert.Equal(t, IconPositive, p.Icon)

	p, err = Normalize(Input{OverallScore: intp(2)}, DefaultVocabulary())
	require.NoError(t, err)
	assert.Equal(t, IconNegative, p.Icon)
}
