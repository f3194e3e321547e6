//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// Local builds keep slog's default keys and add no Cloud Logging fields.

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	return a
}

func gcpTraceAttrs(context.Context, string) []slog.Attr {
	return nil
}
