package authstate

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
)

// LoggerProviderFunc adapts a function into a LoggerProvider.
type LoggerProviderFunc func(name string) Logger

// GetLogger satisfies the LoggerProvider interface.
func (f LoggerProviderFunc) GetLogger(name string) Logger {
	if f == nil {
		return nil
	}
	return f(name)
}

// ResolveLogger resolves the scoped logger for name. A non-nil logger from
// the provider wins; fallback covers providers without a logger for the
// scope, and a glog-backed provider covers the nil-provider case.
func ResolveLogger(name string, provider LoggerProvider, fallback Logger) (LoggerProvider, Logger) {
	if provider == nil {
		provider = glogProvider{}
	}

	if logger := provider.GetLogger(name); logger != nil {
		return provider, logger
	}

	if fallback == nil {
		fallback = defLogger{}
	}

	resolved := fallback
	return LoggerProviderFunc(func(string) Logger { return resolved }), resolved
}

type glogProvider struct{}

func (glogProvider) GetLogger(name string) Logger {
	return glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithName(name),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(goerrors.ToSlogAttributes),
	)
}
