package injury

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsPlainArray(t *testing.T) {
	text := `[{"team":"Duke","player":"Cooper Flagg","status":"Out","impact_score":10,"is_starter":true}]`

	records, outcome := parseRecords(text)

	assert.Equal(t, OutcomeParsed, outcome)
	require.Len(t, records, 1)
	assert.Equal(t, "Duke", records[0].Team)
	assert.Equal(t, 10, records[0].ImpactScore)
	assert.True(t, records[0].IsStarter)
}

func TestParseRecordsCodeFence(t *testing.T) {
	text := "Here are the injuries:\n```json\n[{\"team\":\"Kansas\",\"player\":\"X\",\"status\":\"Doubtful\",\"impact_score\":7}]\n```\nLet me know if you need more."

	records, outcome := parseRecords(text)

	assert.Equal(t, OutcomeParsed, outcome)
	require.Len(t, records, 1)
	assert.Equal(t, "Kansas", records[0].Team)
}

func TestParseRecordsProseWrappedArray(t *testing.T) {
	text := `Based on the articles, the current injuries are: [{"team":"Baylor","player":"Y","status":"Out","impact_score":6}] as of today.`

	records, outcome := parseRecords(text)

	assert.Equal(t, OutcomeParsed, outcome)
	require.Len(t, records, 1)
	assert.Equal(t, "Baylor", records[0].Team)
}

func TestParseRecordsEmptyArray(t *testing.T) {
	records, outcome := parseRecords("[]")

	assert.Equal(t, OutcomeEmpty, outcome)
	assert.Nil(t, records)
}

func TestParseRecordsNonJSON(t *testing.T) {
	records, outcome := parseRecords("No current injuries were found in the provided articles.")

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Nil(t, records)
}

func TestParseRecordsFloatImpactScore(t *testing.T) {
	text := `[{"team":"Duke","player":"Z","status":"Out","impact_score":7.8}]`

	records, outcome := parseRecords(text)

	assert.Equal(t, OutcomeParsed, outcome)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].ImpactScore)
}

func TestClampImpact(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"missing defaults to 3", "", 3},
		{"below range clamps to 1", "0", 1},
		{"above range clamps to 10", "15", 10},
		{"in range passes through", "6", 6},
		{"fraction truncates then clamps", "0.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampImpact(json.Number(tt.in)))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "parsed", OutcomeParsed.String())
	assert.Equal(t, "empty", OutcomeEmpty.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
