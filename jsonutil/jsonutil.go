package jsonutil

import (
	"bytes"
	"encoding/json"
	"sync/atomic"

	"go.uber.org/zap"
)

// indent is four spaces, matching pretty-printed output everywhere else
// in the toolkit.
const indent = "    "

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger. The default is a nop logger; a
// nil argument restores it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Beautify renders v as 4-space-indented JSON. A string or []byte input
// is treated as a raw document and re-indented; any other value is
// marshaled directly. On failure the error is logged and "" is returned.
func Beautify(v any) string {
	switch raw := v.(type) {
	case string:
		return beautifyRaw([]byte(raw))
	case []byte:
		return beautifyRaw(raw)
	default:
		out, err := json.MarshalIndent(v, "", indent)
		if err != nil {
			logger.Load().Error("jsonutil: beautify failed", zap.Error(err))
			return ""
		}
		return string(out)
	}
}

func beautifyRaw(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", indent); err != nil {
		logger.Load().Error("jsonutil: beautify failed", zap.Error(err))
		return ""
	}
	return buf.String()
}

// SafeUnmarshal parses data into a T, returning def when parsing fails or
// the document is JSON null. The failure is logged, never propagated.
//
// A def result is indistinguishable from a document that legitimately
// parsed to def; callers needing to tell them apart must use
// encoding/json directly.
func SafeUnmarshal[T any](data []byte, def T) T {
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return def
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Load().Error("jsonutil: unmarshal failed", zap.Error(err))
		return def
	}
	return out
}

// SafeParse parses data into a dynamically-typed value, or nil when
// parsing fails.
func SafeParse(data []byte) any {
	return SafeUnmarshal[any](data, nil)
}
