// Package gateway resolves which model provider an AI gateway base URL
// targets.
//
// A gateway fronts several providers under one base URL; the final path
// segment names the downstream provider (e.g. .../google-ai-studio or
// .../openai).
package gateway

import "strings"

const (
	// APIKeyEnv carries the gateway credential.
	APIKeyEnv = "AI_GATEWAY_API_KEY"
	// BaseURLEnv carries the gateway base URL.
	BaseURLEnv = "AI_GATEWAY_BASE_URL"
)

// Route names the container-side variables that receive the gateway
// credential and base URL for one provider.
type Route struct {
	Provider   string
	APIKeyVar  string
	BaseURLVar string
}

// routes maps the URL's provider tag to the variables it populates. Adding a
// provider means adding a row here.
var routes = map[string]Route{
	"google-ai-studio": {Provider: "google", APIKeyVar: "GOOGLE_API_KEY", BaseURLVar: "GOOGLE_BASE_URL"},
	"openai":           {Provider: "openai", APIKeyVar: "OPENAI_API_KEY", BaseURLVar: "OPENAI_BASE_URL"},
}

// NormalizeBaseURL strips all trailing slashes. Idempotent.
func NormalizeBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}

// ProviderTag returns the last non-empty path segment of the base URL. A URL
// with no slashes is its own tag.
func ProviderTag(baseURL string) string {
	normalized := NormalizeBaseURL(baseURL)
	if i := strings.LastIndex(normalized, "/"); i >= 0 {
		return normalized[i+1:]
	}
	return normalized
}

// RouteFor looks up the Route for a base URL. ok is false when the tag names
// no known provider; callers are expected to route nothing in that case.
func RouteFor(baseURL string) (Route, bool) {
	r, ok := routes[ProviderTag(baseURL)]
	return r, ok
}
