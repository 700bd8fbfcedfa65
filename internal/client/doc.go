// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires storages, provider adapters, the redirect listener and the client
// services into a single process lifecycle and exposes the operations the
// command line front end calls.
package client
