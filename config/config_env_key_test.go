package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"remote": map[string]any{
			"baseUrl": "",
		},
		"session": map[string]any{
			"storePath": "",
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readTimeout": "10s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REMOTE_BASEURL", want: "remote.baseUrl"},
		{envKey: "SESSION_STOREPATH", want: "session.storePath"},
		{envKey: "HTTP_TIMEOUTS_READTIMEOUT", want: "http.timeouts.readTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
