// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal config picker and the client services into a single
// process lifecycle and prints the chosen configuration on exit.
package client
