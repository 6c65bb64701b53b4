// SPDX-License-Identifier: MPL-2.0

// Package config handles mimectl's tool configuration using Viper.
//
// Configuration is loaded from $XDG_CONFIG_HOME/mimectl/config.toml. On first
// run the file is written out with the defaults so users have something to
// edit. This is the configuration of the tool itself (selector command and
// whether to use it); the association data lives in mimeapps.list and is
// handled by the assoc package.
package config
