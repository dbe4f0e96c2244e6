// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means neither an HTTP nor a gRPC address is
	// configured. Startup fails on it.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServices means the HTTP transport is enabled without the item
	// and auth services it routes to.
	errNoServices = errors.New("http handler requires services")
)
