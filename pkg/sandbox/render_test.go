package sandbox

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

var renderEnv = map[string]string{
	"CLAWDBOT_GATEWAY_TOKEN": "tok",
	"AI_GATEWAY_BASE_URL":    "https://gw/openai",
	"OPENAI_API_KEY":         "sk-1",
	"OPENAI_BASE_URL":        "https://gw/openai",
	"CLAWDBOT_DEV_MODE":      "true",
}

func TestLinesSorted(t *testing.T) {
	lines := Lines(renderEnv)

	assert.Equal(t, []string{
		"AI_GATEWAY_BASE_URL=https://gw/openai",
		"CLAWDBOT_DEV_MODE=true",
		"CLAWDBOT_GATEWAY_TOKEN=tok",
		"OPENAI_API_KEY=sk-1",
		"OPENAI_BASE_URL=https://gw/openai",
	}, lines)
}

func TestLinesEmpty(t *testing.T) {
	assert.Empty(t, Lines(nil))
}

func TestRenderDotEnv(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, renderEnv, FormatDotEnv))

	golden.Assert(t, buf.String(), "env.golden")
}

func TestRenderShell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, renderEnv, FormatShell))

	golden.Assert(t, buf.String(), "env-shell.golden")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, renderEnv, FormatJSON))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, renderEnv, decoded)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, renderEnv, Format("toml"))
	assert.Error(t, err)
}

func TestDockerRunArgs(t *testing.T) {
	args := DockerRunArgs("ghcr.io/vanboompow/clawdbot:latest", renderEnv)

	require.GreaterOrEqual(t, len(args), 5)
	assert.Equal(t, []string{"run", "--rm", "--name"}, args[:3])
	assert.True(t, strings.HasPrefix(args[3], "clawdbot-"), "container name %q", args[3])
	assert.Equal(t, "ghcr.io/vanboompow/clawdbot:latest", args[len(args)-1])

	var envArgs []string
	for i, a := range args {
		if a == "--env" {
			envArgs = append(envArgs, args[i+1])
		}
	}
	assert.Equal(t, Lines(renderEnv), envArgs)
}

func TestDockerRunArgsUniqueNames(t *testing.T) {
	a := DockerRunArgs("img", nil)
	b := DockerRunArgs("img", nil)
	assert.NotEqual(t, a[3], b[3])
}
