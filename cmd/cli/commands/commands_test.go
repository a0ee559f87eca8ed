package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/issueops/issue-assign/pkg/assignment"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestTeamsCmd(t *testing.T) {
	out := execute(t, "teams")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, assignment.Count)
	require.Contains(t, lines, "networks")
	require.Contains(t, lines, "fleet")
}

func TestTeamsCmdJSON(t *testing.T) {
	out := execute(t, "teams", "--json")
	var teams []string
	require.NoError(t, json.Unmarshal([]byte(out), &teams))
	require.Equal(t, assignment.Teams(), teams)
}

func TestModelCmd(t *testing.T) {
	out := execute(t, "model")
	require.Contains(t, out, assignment.Model)
	require.Contains(t, out, assignment.BaseModel)
}

func TestModelCmdJSON(t *testing.T) {
	out := execute(t, "model", "--json")
	var refs struct {
		Model     string `json:"model"`
		BaseModel string `json:"base_model"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &refs))
	require.Equal(t, assignment.Model, refs.Model)
	require.Equal(t, assignment.BaseModel, refs.BaseModel)
}

func TestValidateCmd(t *testing.T) {
	out := execute(t, "validate")
	require.Contains(t, out, "Configuration OK")
}

func TestVersionCmd(t *testing.T) {
	out := execute(t, "version")
	require.Contains(t, out, "issue-assign version")
}
