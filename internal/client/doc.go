// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal process lifecycle.
//
// It opens the local store, then runs the connectivity monitor, the
// periodic reconciliation job and the local API server side by side until
// the process is asked to stop.
package client
