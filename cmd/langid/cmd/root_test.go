package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) string {
	t.Helper()

	root := GetRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return out.String()
}

func TestRootCommand_Version(t *testing.T) {
	out := executeCommand(t, "--version")
	assert.Contains(t, out, "langid")
}

func TestLanguagesCommand(t *testing.T) {
	out := executeCommand(t, "languages")
	assert.Contains(t, out, "English")
	assert.Contains(t, out, "en")
	assert.Contains(t, out, "Cyrillic")
}

func TestDetectCommand_RuleShortCircuit(t *testing.T) {
	// Script-unique input is answered by the rule engine alone, so no model
	// files are needed on disk.
	out := executeCommand(t, "detect", "ελληνικά")
	assert.Contains(t, out, "Greek")
}

func TestDetectCommand_JSONFormat(t *testing.T) {
	out := executeCommand(t, "detect", "--format", "json", "한국어입니다")
	assert.Contains(t, out, `"language": "Korean"`)
	assert.Contains(t, out, `"code": "ko"`)
}
