package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAdjustment struct {
	Username      string  `json:"username"`
	AdjustedScore float64 `json:"adjusted_score"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	raw := `{"username":"Sarah Chen","adjusted_score":88.5}`
	result, err := ExtractJSON[testAdjustment](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", result.Username)
	assert.Equal(t, 88.5, result.AdjustedScore)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"username\":\"Marcus Johnson\",\"adjusted_score\":91}\n```"
	result, err := ExtractJSON[testAdjustment](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Marcus Johnson", result.Username)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is my assessment:\n{\"username\":\"Elena\",\"adjusted_score\":72}\nLet me know if you need more."
	result, err := ExtractJSON[testAdjustment](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Elena", result.Username)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Plan map[string]string `json:"suggested_plan"`
	}
	raw := `{"suggested_plan":{"primary_assignee":"D. Kim {lead}","plan_type":"solo"}}`
	result, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "D. Kim {lead}", result.Plan["primary_assignee"])
}

func TestExtractJSON_LineComments(t *testing.T) {
	raw := "{\n  \"username\": \"Sarah\", // top candidate\n  \"adjusted_score\": 90\n}"
	result, err := ExtractJSON[testAdjustment](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, result.AdjustedScore)
}

func TestExtractJSON_BlockComments(t *testing.T) {
	raw := `{"username": /* from analytics */ "Sarah", "adjusted_score": 81}`
	result, err := ExtractJSON[testAdjustment](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 81.0, result.AdjustedScore)
}

func TestExtractJSON_LeadingDecimalRepair(t *testing.T) {
	type conf struct {
		Confidence    float64 `json:"confidence"`
		AdjustedDelta float64 `json:"adjusted_delta"`
	}
	raw := `{"confidence": .85, "adjusted_delta": -.3}`
	result, err := ExtractJSON[conf](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.85, result.Confidence)
	assert.Equal(t, -0.3, result.AdjustedDelta)
}

func TestExtractJSON_CommentMarkersInsideStrings(t *testing.T) {
	type reason struct {
		Reasoning string `json:"reasoning"`
	}
	raw := `{"reasoning":"strong fit // per success rate https://example.com/a.b"}`
	result, err := ExtractJSON[reason](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "strong fit // per success rate https://example.com/a.b", result.Reasoning)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	raw := "I cannot produce a recommendation for this team."
	_, err := ExtractJSON[testAdjustment](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	raw := `{"username":"Sarah","adjusted_score":88`
	_, err := ExtractJSON[testAdjustment](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	raw := `{"username":"Sarah", broken}`
	_, err := ExtractJSON[testAdjustment](raw, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	raw := `{"username":"Sarah","adjusted_score":130}`
	validator := func(a testAdjustment) error {
		if a.AdjustedScore < 0 || a.AdjustedScore > 100 {
			return fmt.Errorf("adjusted_score must be in [0,100], got %f", a.AdjustedScore)
		}
		return nil
	}
	_, err := ExtractJSON(raw, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSON_ValidationSuccess(t *testing.T) {
	raw := `{"username":"Sarah","adjusted_score":88}`
	validator := func(a testAdjustment) error {
		if a.Username == "" {
			return fmt.Errorf("username is required")
		}
		return nil
	}
	result, err := ExtractJSON(raw, validator)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", result.Username)
}

func TestExtractJSON_EscapedQuotesInString(t *testing.T) {
	type reason struct {
		Reasoning string `json:"reasoning"`
	}
	raw := `{"reasoning":"said \"ship it\" after review {twice}"}`
	result, err := ExtractJSON[reason](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `said "ship it" after review {twice}`, result.Reasoning)
}
