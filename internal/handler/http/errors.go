// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidGzipBody is answered with 400 when a request declares
// "Content-Encoding: gzip" but its body is not a gzip stream.
var errInvalidGzipBody = errors.New("invalid gzip data")
