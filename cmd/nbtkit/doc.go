// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

// Nbtkit inspects and converts binary tag documents. It decodes the
// big-endian tagged tree format, detects gzip/zlib/zstd/lz4 wrapping
// from magic bytes, and offers four subcommands:
//
//	dump     render the tree in wire order with TAG_X('name') lines
//	export   project the tree to JSON, YAML, or deterministic CBOR
//	digest   print a stable content fingerprint per file
//	version  print build information
//
// Exit codes:
//
//	0  success
//	1  the file could not be opened, decompressed, or decoded
//	2  bad arguments or configuration
//
// Per-user defaults live in $XDG_CONFIG_HOME/nbtkit/config.jsonc.
package main
