// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network reports whether the remote store is reachable.
//
// [Monitor] is the read side used by the sync manager. [ProbeMonitor] derives
// the state from periodic health probes; [ManualMonitor] is driven by the
// host application, for example from OS connectivity callbacks.
package network
