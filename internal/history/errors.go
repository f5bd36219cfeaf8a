// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import "errors"

// ErrHistory wraps any failure from the underlying history store command.
var ErrHistory = errors.New("history store error")
