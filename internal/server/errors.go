// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrListen is returned when the redirect listener cannot bind its address.
var ErrListen = errors.New("cannot start redirect listener")
