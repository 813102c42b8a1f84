package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are lowercase HTTP header names whose values never reach
// the logs.
var sensitiveHeaders = []string{"authorization", "x-api-key", "cookie"}

// Attribute keys redacted wherever they appear, in addition to the headers.
var (
	sensitiveKeys        = []string{"password", "secret", "token"}
	sensitiveKeyPrefixes = []string{"secret_", "api_key"}
)

// Raw values redacted regardless of their key.
var sensitiveValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; at least 10 characters per segment so version strings pass.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// IsSensitiveHeader reports whether the named header carries credentials.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// newRedactAttr returns the masq ReplaceAttr hook installed by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	keys := slices.Concat(sensitiveHeaders, sensitiveKeys)
	opts := make([]masq.Option, 0, len(keys)+len(sensitiveKeyPrefixes)+len(sensitiveValues))

	for _, k := range keys {
		opts = append(opts, masq.WithFieldName(k))
	}
	for _, p := range sensitiveKeyPrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
