// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoTransportConfigured is returned by NewServer when neither an HTTP nor
// a gRPC address is configured.
var ErrNoTransportConfigured = errors.New("server: neither HTTP nor gRPC address is configured")
