package cli

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runServe(t *testing.T, input string) []map[string]any {
	t.Helper()
	root := NewRootCmd(testApp())
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"serve"})
	require.NoError(t, root.Execute())

	var responses []map[string]any
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var resp map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	return responses
}

func TestServe_OneResponsePerRequest(t *testing.T) {
	input := `{"request_type": "get_team_analytics", "data": {"group_id": "team1"}}
{"request_type": "get_workload_distribution", "data": {"group_id": "team1"}}
`
	responses := runServe(t, input)

	require.Len(t, responses, 2)
	assert.Equal(t, true, responses[0]["success"])
	assert.NotNil(t, responses[0]["team_analytics"])
	assert.Equal(t, true, responses[1]["success"])
	assert.NotNil(t, responses[1]["workload_distribution"])
}

func TestServe_MalformedLineKeepsServing(t *testing.T) {
	input := `this is not json
{"request_type": "get_user_analytics", "data": {"user_id": "u1"}}
`
	responses := runServe(t, input)

	require.Len(t, responses, 2)
	assert.Equal(t, false, responses[0]["success"])
	assert.Contains(t, responses[0]["error"], "invalid request")
	assert.Equal(t, true, responses[1]["success"])
}

func TestServe_UnknownRequestType(t *testing.T) {
	responses := runServe(t, `{"request_type": "make_coffee"}`+"\n")

	require.Len(t, responses, 1)
	assert.Equal(t, false, responses[0]["success"])
	assert.Equal(t, "Unknown request type: make_coffee", responses[0]["error"])
}

func TestServe_SkipsBlankLines(t *testing.T) {
	input := "\n\n" + `{"request_type": "get_team_analytics", "data": {"group_id": "team1"}}` + "\n"
	responses := runServe(t, input)

	require.Len(t, responses, 1)
	assert.Equal(t, true, responses[0]["success"])
}

func TestServe_EmptyInput(t *testing.T) {
	responses := runServe(t, "")
	assert.Empty(t, responses)
}
