// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless client runtime.
//
// It wires the local store, the network monitor and the sync manager into a
// single process lifecycle that ends when the context is cancelled.
package client
