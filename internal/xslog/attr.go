package xslog

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/izhairtrend/hairtrend/internal/version"
	"github.com/izhairtrend/hairtrend/internal/xhttp"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorAny(err any) slog.Attr {
	return slog.Any(keyError, err)
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestMethod(r *http.Request) slog.Attr {
	const methodKey = "method"
	return slog.String(methodKey, r.Method)
}

func RequestPath(r *http.Request) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, r.URL.Path)
}

func IP(ip string) slog.Attr {
	const ipKey = "ip"
	return slog.String(ipKey, ip)
}

func RequestIP(r *http.Request) slog.Attr {
	return IP(xhttp.GetRequestIP(r))
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Route(path string) slog.Attr {
	const routeKey = "route"
	return slog.String(routeKey, path)
}

func Locale(code string) slog.Attr {
	const localeKey = "locale"
	return slog.String(localeKey, code)
}

func Asset(name string) slog.Attr {
	const assetKey = "asset"
	return slog.String(assetKey, name)
}

func Addr(addr string) slog.Attr {
	const addrKey = "addr"
	return slog.String(addrKey, addr)
}

func Viewport(width, height int) slog.Attr {
	const viewportKey = "viewport"
	return slog.Group(viewportKey,
		slog.Int("width", width),
		slog.Int("height", height),
	)
}

// Session tags every line of one terminal run.
func Session(id string) slog.Attr {
	const sessionKey = "session"
	return slog.String(sessionKey, id)
}
