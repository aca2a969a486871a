// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package middleware provides the HTTP middleware Sakefinder adds on top of chi's
own: request id propagation and Prometheus instrumentation.

Both are written as http.HandlerFunc decorators; the api package adapts them
for chi's r.Use.

Request ID:

	handler = middleware.RequestID(handler)

An incoming X-Request-ID header is reused when it is a short token of safe
characters, otherwise a UUID is generated. The id is echoed in the response
header and stored in the context with logging.ContextWithRequestID, together
with a fresh correlation id, so logging.Ctx(r.Context()) tags every line.

Prometheus Metrics:

	handler = middleware.PrometheusMetrics(handler)

Records api_requests_total, api_request_duration_seconds and
api_active_requests. The endpoint label is the chi route pattern
(/api/v1/diagnosis/sessions/{id}) rather than the raw path, so session ids
never become label values. Requests that matched no route are labeled
"unmatched".
*/
package middleware
