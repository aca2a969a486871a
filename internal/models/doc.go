// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

/*
Package models defines the HTTP wire types for Sakefinder.

Domain types (catalog.Entry, diagnosis.Question, recommend.Response,
purchase.Stats) are serialized as they are; this package only adds the pieces
that exist purely for the API:

  - APIResponse: the {status, data, metadata, error} envelope every endpoint returns
  - APIError: machine-readable code, message and optional details
  - Metadata: timestamp, processing time, cache flag and request id
  - SessionView: a quiz session as the client sees it
  - SakeList, DishList, HealthStatus, PurchaseRedirect: list and status payloads

Status field values are StatusSuccess and StatusError.
*/
package models
