// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Most mimectl tests need a sandboxed XDG environment: a scratch HOME,
// XDG_CONFIG_HOME and XDG_DATA_HOME, plus desktop entries and alias tables
// planted under them. The helpers here cover that setup.
package testutil
