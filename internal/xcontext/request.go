// Package xcontext holds the per-request values the web edition's
// middleware and handlers hand to each other.
package xcontext

import (
	"context"

	"github.com/izhairtrend/hairtrend/internal/locale"
)

type (
	requestIDKey struct{}
	shutdownKey  struct{}
	pageKey      struct{}
)

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

// SetShutdownInProgress marks a request cancelled by draining rather than by
// the client hanging up.
func SetShutdownInProgress(ctx context.Context, inProgress bool) context.Context {
	return context.WithValue(ctx, shutdownKey{}, inProgress)
}

func IsShutdownInProgress(ctx context.Context) bool {
	inProgress, _ := ctx.Value(shutdownKey{}).(bool)
	return inProgress
}

// Page is what a page handler learned about the request: the view it matched
// and the locale it rendered in. Middleware further out reads it after the
// handler returns.
type Page struct {
	Route  string
	Locale locale.Locale
}

func WithPage(ctx context.Context) (context.Context, *Page) {
	p := &Page{}
	return context.WithValue(ctx, pageKey{}, p), p
}

// GetPage returns the request's page record, or nil if no middleware made one.
func GetPage(ctx context.Context) *Page {
	p, _ := ctx.Value(pageKey{}).(*Page)
	return p
}

// SetPage records route and l on the request's page, if it has one.
func SetPage(ctx context.Context, route string, l locale.Locale) {
	if p := GetPage(ctx); p != nil {
		p.Route = route
		p.Locale = l
	}
}
