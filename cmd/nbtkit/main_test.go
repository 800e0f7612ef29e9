// Copyright 2026 The NBTKit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/nbtkit/nbtkit/lib/nbt"
	"github.com/nbtkit/nbtkit/lib/nbtfile"
)

func writeFixture(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.nbt")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buffer.Bytes()
}

func TestDecodeSourceAutoDetectsGzip(t *testing.T) {
	wire := compoundWire("Level", keyed(nbt.TagString, "x", str("y")))
	path := writeFixture(t, gzipped(t, wire))

	root, scheme, trailing, err := decodeSource(path, "auto")
	if err != nil {
		t.Fatalf("decodeSource: %v", err)
	}
	if scheme != nbtfile.SchemeGzip {
		t.Errorf("scheme: got %s, want %s", scheme, nbtfile.SchemeGzip)
	}
	if trailing {
		t.Error("trailing: got true, want false")
	}
	got, err := root.Get("x").AsString()
	if err != nil {
		t.Fatalf("AsString: %v", err)
	}
	if got != "y" {
		t.Errorf("x: got %q, want %q", got, "y")
	}
}

func TestDecodeSourceExplicitScheme(t *testing.T) {
	wire := compoundWire("", keyed(nbt.TagByte, "b", []byte{0x05}))
	path := writeFixture(t, wire)

	root, scheme, _, err := decodeSource(path, "none")
	if err != nil {
		t.Fatalf("decodeSource: %v", err)
	}
	if scheme != nbtfile.SchemeNone {
		t.Errorf("scheme: got %s, want %s", scheme, nbtfile.SchemeNone)
	}
	if value, _ := root.Get("b").AsByte(); value != 5 {
		t.Errorf("b: got %d, want 5", value)
	}
}

func TestDecodeSourceWrongSchemeFails(t *testing.T) {
	path := writeFixture(t, compoundWire(""))
	if _, _, _, err := decodeSource(path, "gzip"); err == nil {
		t.Error("decodeSource with the wrong scheme should fail")
	}
}

func TestDecodeSourceUnknownSchemeName(t *testing.T) {
	path := writeFixture(t, compoundWire(""))
	if _, _, _, err := decodeSource(path, "brotli"); err == nil {
		t.Error("decodeSource with an unknown scheme name should fail")
	}
}

func TestDecodeSourceReportsTrailingBytes(t *testing.T) {
	wire := append(compoundWire(""), 0xde, 0xad)
	path := writeFixture(t, wire)

	_, _, trailing, err := decodeSource(path, "auto")
	if err != nil {
		t.Fatalf("decodeSource: %v", err)
	}
	if !trailing {
		t.Error("trailing: got false, want true")
	}
}

func TestDecodeSourceMissingFile(t *testing.T) {
	if _, _, _, err := decodeSource(filepath.Join(t.TempDir(), "absent.nbt"), "auto"); err == nil {
		t.Error("decodeSource on a missing file should fail")
	}
}

func TestRunUsageErrors(t *testing.T) {
	if got := run(nil); got != 2 {
		t.Errorf("run with no arguments: got %d, want 2", got)
	}
	if got := run([]string{"frobnicate"}); got != 2 {
		t.Errorf("run with an unknown command: got %d, want 2", got)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	if got := run([]string{"help"}); got != 0 {
		t.Errorf("run help: got %d, want 0", got)
	}
	if got := run([]string{"--version"}); got != 0 {
		t.Errorf("run --version: got %d, want 0", got)
	}
	if got := run([]string{"version"}); got != 0 {
		t.Errorf("run version: got %d, want 0", got)
	}
}

func TestRunDigestMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := run([]string{"digest", filepath.Join(t.TempDir(), "absent.nbt")}); got != 1 {
		t.Errorf("digest of a missing file: got %d, want 1", got)
	}
}

func TestRunExportToFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	source := writeFixture(t, compoundWire("Level", keyed(nbt.TagInt, "n", []byte{0x00, 0x00, 0x00, 0x2a})))
	out := filepath.Join(t.TempDir(), "out.json")

	if got := run([]string{"export", "--format", "json", "--indent", "0", "--out", out, source}); got != 0 {
		t.Fatalf("run export: got %d, want 0", got)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if want := "{\"n\":42}\n"; string(data) != want {
		t.Errorf("exported JSON: got %q, want %q", data, want)
	}
}
