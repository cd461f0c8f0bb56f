package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields are attribute keys whose values are always masked: the
// form's password fields under both their form and scenario names, plus
// credential headers.
var SensitiveFields = []string{
	"password",
	"confirm_password",
	"senha",
	"confirmarSenha",
	"authorization",
	"cookie",
	"x-api-key",
	"secret",
	"token",
}

// sensitivePrefixes catch key variants such as "secret_salt".
var sensitivePrefixes = []string{"secret_", "api_key", "password_"}

// Raw credential shapes masked wherever they appear in a string value.
var sensitiveValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
}

// redactor returns the ReplaceAttr hook installed on every handler New builds.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))
	for _, name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
