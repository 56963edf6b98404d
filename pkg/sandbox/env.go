// Package sandbox builds the environment handed to the clawdbot container.
package sandbox

import (
	"context"

	"github.com/vanboompow/moltworker/pkg/environment"
	"github.com/vanboompow/moltworker/pkg/gateway"
)

// passthroughVars are copied into the container unchanged when set. Absent
// variables emit nothing; set-but-empty values are forwarded as-is.
//
// OPENAI_BASE_URL is deliberately not here: it only ever exists as a
// gateway-derived value.
var passthroughVars = []string{
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
	"GOOGLE_API_KEY",
	"GOOGLE_BASE_URL",
	"TELEGRAM_BOT_TOKEN",
	"TELEGRAM_DM_POLICY",
	"DISCORD_BOT_TOKEN",
	"DISCORD_DM_POLICY",
	"SLACK_BOT_TOKEN",
	"SLACK_DM_POLICY",
	"CLAWDBOT_BIND_MODE",
}

// renamedVars translate host-side names to the names clawdbot reads inside
// the container. The host-side name is never forwarded.
var renamedVars = map[string]string{
	"MOLTBOT_GATEWAY_TOKEN": "CLAWDBOT_GATEWAY_TOKEN",
	"DEV_MODE":              "CLAWDBOT_DEV_MODE",
}

// BuildEnv computes the container environment from a host environment
// snapshot. It is total: malformed or unrecognized values degrade to
// omission, never to an error.
//
// Gateway credentials take precedence over direct provider credentials: when
// AI_GATEWAY_API_KEY and AI_GATEWAY_BASE_URL are both set and the URL's last
// path segment names a known provider, that provider's key and base URL come
// from the gateway, overwriting any directly-set key. At most one provider is
// routed per call.
func BuildEnv(ctx context.Context, env environment.Provider) map[string]string {
	out := make(map[string]string)

	for _, name := range passthroughVars {
		if v, ok := env.Get(ctx, name); ok {
			out[name] = v
		}
	}

	if rawURL, ok := env.Get(ctx, gateway.BaseURLEnv); ok {
		baseURL := gateway.NormalizeBaseURL(rawURL)
		out[gateway.BaseURLEnv] = baseURL

		if key, ok := env.Get(ctx, gateway.APIKeyEnv); ok {
			if route, ok := gateway.RouteFor(baseURL); ok {
				out[route.APIKeyVar] = key
				out[route.BaseURLVar] = baseURL
			}
		}
	}

	for host, container := range renamedVars {
		if v, ok := env.Get(ctx, host); ok {
			out[container] = v
		}
	}

	return out
}

// InputVars lists every host-side variable BuildEnv reads, in a stable order.
// Used by the check command to report configuration without echoing values.
func InputVars() []string {
	vars := make([]string, 0, len(passthroughVars)+len(renamedVars)+2)
	vars = append(vars, passthroughVars...)
	vars = append(vars, gateway.APIKeyEnv, gateway.BaseURLEnv)
	vars = append(vars, "MOLTBOT_GATEWAY_TOKEN", "DEV_MODE")
	return vars
}
