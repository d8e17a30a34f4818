// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /{$}", middleware.WithLogging(handler))

Each request gets an X-Request-ID (taken from the request or generated)
that is echoed in the response and attached to the start and completion
log lines along with status and duration_ms.

# Admin Routes

Guard a handler with an HMAC admin key for a scope:

	mux.Handle("GET /debug/schema", middleware.RequireAdminKey(auth.ScopeDebug, salt, h))

Responds 403 when no salt is configured and 401 when X-Admin-Key is
missing or wrong.

# CORS Middleware

Enable cross-origin reads for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET and OPTIONS with headers Content-Type, Authorization,
X-Admin-Key and X-Request-ID.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusOK, "plain body")
	middleware.ErrorResponse(w, http.StatusNotFound, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
