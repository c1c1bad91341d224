package router

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tcp-user-service/internal/adapter/tcp/handler"
	"tcp-user-service/internal/adapter/tcp/protocol"
)

// HandlerFunc converts a raw request into a status-line/body pair.
type HandlerFunc func(ctx context.Context, raw string) (statusLine, body string)

// route pairs a literal request prefix with its handler.
type route struct {
	prefix string
	handle HandlerFunc
}

// Router dispatches raw requests by literal prefix comparison, first
// match in priority order wins.
type Router struct {
	routes []route
	log    *zap.Logger
}

// New configures the router with the five user routes. Order matters:
// "GET /users/" must be tried before "GET /users", which is its strict
// prefix-superset.
func New(h *handler.UserHandler, log *zap.Logger) *Router {
	return &Router{
		routes: []route{
			{prefix: "POST /users", handle: h.Create},
			{prefix: "GET /users/", handle: h.GetOne},
			{prefix: "GET /users", handle: h.GetAll},
			{prefix: "PUT /users/", handle: h.Update},
			{prefix: "DELETE /users/", handle: h.Delete},
		},
		log: log,
	}
}

// Dispatch routes the raw request to the first matching handler. Requests
// matching no route receive the route-level not-found response.
func (r *Router) Dispatch(ctx context.Context, raw string) (string, string) {
	for _, rt := range r.routes {
		if strings.HasPrefix(raw, rt.prefix) {
			return rt.handle(ctx, raw)
		}
	}

	r.log.Debug("no route matched", zap.String("request_line", firstLine(raw)))
	return protocol.StatusNotFound, protocol.BodyRouteNotFound
}

func firstLine(raw string) string {
	if i := strings.IndexAny(raw, "\r\n"); i >= 0 {
		return raw[:i]
	}
	return raw
}
