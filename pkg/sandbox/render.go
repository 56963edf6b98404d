package sandbox

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/google/uuid"
)

// Format selects how a container environment is emitted.
type Format string

const (
	// FormatDotEnv writes KEY=VALUE lines suitable for docker run --env-file.
	FormatDotEnv Format = "dotenv"
	// FormatShell writes export statements with shell-quoted values.
	FormatShell Format = "shell"
	// FormatJSON writes a single JSON object.
	FormatJSON Format = "json"
)

// Keys returns the variable names of env, sorted.
func Keys(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lines returns env as sorted KEY=VALUE strings, the form docker and exec
// both expect.
func Lines(env map[string]string) []string {
	lines := make([]string, 0, len(env))
	for _, k := range Keys(env) {
		lines = append(lines, k+"="+env[k])
	}
	return lines
}

// Render writes env to w in the given format. Output is deterministic: keys
// are always sorted.
func Render(w io.Writer, env map[string]string, format Format) error {
	switch format {
	case FormatDotEnv:
		for _, line := range Lines(env) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case FormatShell:
		for _, k := range Keys(env) {
			if _, err := fmt.Fprintf(w, "export %s=%s\n", k, strconv.Quote(env[k])); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// DockerRunArgs builds the argv for running image with env injected. Nothing
// is executed here; callers own the actual spawn. The container name is
// unique per call.
func DockerRunArgs(image string, env map[string]string) []string {
	args := []string{"run", "--rm", "--name", "clawdbot-" + uuid.NewString()[:8]}
	for _, line := range Lines(env) {
		args = append(args, "--env", line)
	}
	return append(args, image)
}
