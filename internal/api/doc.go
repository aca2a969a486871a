// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package api provides the HTTP interface of Sakefinder.

All endpoints live under /api/v1 and answer with the models.APIResponse
envelope. Routing uses chi; CORS and per-IP rate limiting come from
go-chi/cors and go-chi/httprate.

# Endpoints

Quiz:
  - GET    /api/v1/diagnosis/questions
  - POST   /api/v1/diagnosis/sessions
  - GET    /api/v1/diagnosis/sessions/{id}
  - DELETE /api/v1/diagnosis/sessions/{id}
  - POST   /api/v1/diagnosis/sessions/{id}/answers
  - POST   /api/v1/diagnosis/sessions/{id}/back
  - GET    /api/v1/diagnosis/sessions/{id}/recommendations?count=N

Recommendations and catalog:
  - POST /api/v1/recommendations
  - GET  /api/v1/sakes?limit=&offset=&class=&style=
  - GET  /api/v1/sakes/{id}
  - GET  /api/v1/sakes/{id}/buy?referrer=  (302 to the shop)
  - GET  /api/v1/dishes?cuisine=
  - GET  /api/v1/sweetness?degree=&acidity=

Purchase tracking:
  - POST   /api/v1/purchases
  - GET    /api/v1/purchases/stats
  - DELETE /api/v1/purchases/stats

Operations:
  - GET /api/v1/health
  - GET /metrics (Prometheus)

# Errors

Domain errors are mapped to HTTP status codes in one place (mapError), so
handlers only decide what to call, never which status to send.
*/
package api
