package ratelimit

import (
	"strings"
)

// exemptPaths are never limited, whatever the method.
var exemptPaths = map[string]bool{
	"/health": true,
}

var unlimited = EndpointConfig{}

// MatchEndpoint finds the endpoint configuration for a request.
// Configured paths use the same "{name}" wildcard segments as the router, so
// "/analyses/{id}/skills/toggle" matches "/analyses/abc/skills/toggle".
// An exact path wins over a wildcard one. Nil means the default limit applies.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if exemptPaths[path] {
		c := unlimited
		return &c
	}

	var wildcard *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if wildcard == nil && segmentsMatch(c.Path, path) {
			wildcard = c
		}
	}
	return wildcard
}

func segmentsMatch(pattern, path string) bool {
	if !strings.Contains(pattern, "{") {
		return false
	}
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return false
	}
	for i, seg := range want {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
