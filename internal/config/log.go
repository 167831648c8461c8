package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// MarshalZerologObject writes the configuration as a log object. The API key
// is masked and passwords embedded in URLs are replaced, so the result is
// safe to log at any level.
//
// Example usage:
//
//	log.Debug().Object("config", cfg).Msg("received configs")
func (c *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("app", zerolog.Dict().
		Str("api_key", maskSecret(c.App.APIKey)).
		Str("workspace", c.App.Workspace).
		Str("log_level", c.App.LogLevel))

	e.Dict("adapter", zerolog.Dict().
		Str("address", redactURL(c.Adapter.HTTPAddress)).
		Dur("request_timeout", c.Adapter.RequestTimeout).
		Uint64("retry_attempts", c.Adapter.RetryAttempts).
		Dur("retry_backoff", c.Adapter.RetryBackoff))

	e.Dict("storage", zerolog.Dict().
		Str("dsn", redactURL(c.Storage.DB.DSN)))

	e.Dict("workers", zerolog.Dict().
		Dur("flush_interval", c.Workers.FlushInterval).
		Int("batch_size", c.Workers.BatchSize).
		Int("flush_limit", c.Workers.FlushLimit).
		Int("max_attempts", c.Workers.MaxAttempts))

	e.Dict("server", zerolog.Dict().
		Str("metrics_address", c.Server.MetricsAddress))

	e.Dict("target", zerolog.Dict().
		Str("dataset_name", c.Target.DatasetName).
		Str("dataset_id", c.Target.DatasetID).
		Bool("skip_deduplication", c.Target.SkipDeduplication))

	e.Str("config_file", c.JSONFilePath).
		Strs("args", c.Args)
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}

// redactURL hides the password of a URL with user info. Values that are not
// URLs (e.g. a SQLite file path) are returned unchanged.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		// the parse error itself may echo the password
		return redacted
	}
	if u.User == nil {
		return raw
	}
	return u.Redacted()
}
