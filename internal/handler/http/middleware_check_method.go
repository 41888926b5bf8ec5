// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered as both the NotFound and the
// MethodNotAllowed handler of the router.
//
// A request for a known path with an unregistered method gets the same
// 404 NotFound body as a request for an unknown path, so callers cannot
// discover which routes exist.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeErrorKind(w, http.StatusNotFound, kindNotFound, "route "+r.Method+" "+r.URL.Path+" not found")
}
