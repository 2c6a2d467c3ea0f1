// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and the client services into a single
// process lifecycle: restore or sign in, edit notes, sign out and start over.
package client
