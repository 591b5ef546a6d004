// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/afgtfw/audio"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/ik5/afgtfw/formats/wav"
)

// Commands reconfigure the global logger, so these tests run sequentially.

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoAndInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burst.tfw")

	if _, err := run(t, "demo", "--points", "1200", "--cycles", "32", "--out", path); err != nil {
		t.Fatalf("demo error = %v", err)
	}

	out, err := run(t, "info", path)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}

	for _, want := range []string{
		"Version:       20050114",
		"Samples:       1200 declared, 1200 read",
		"Envelope flag: 1",
		"Code range:    0..16382",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestInfo_NotTFW(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.tfw")
	if err := os.WriteFile(path, []byte("not a waveform"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "info", path)
	if !errors.Is(err, tfw.ErrFormat) {
		t.Errorf("info error = %v, want %v", err, tfw.ErrFormat)
	}
}

func writeWAV(t *testing.T, path string, samples []int16) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 8000, samples); err != nil {
		t.Fatal(err)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ramp.wav")

	samples := make([]int16, 500)
	for i := range samples {
		samples[i] = int16(i*100 - 25000)
	}
	writeWAV(t, in, samples)

	if _, err := run(t, "import", in, "--points", "64"); err != nil {
		t.Fatalf("import error = %v", err)
	}

	codes, err := tfw.ReadFile(filepath.Join(dir, "ramp.tfw"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(codes) != 64 {
		t.Errorf("len = %d, want 64", len(codes))
	}
	if codes[0] != 0 || codes[63] != 16382 {
		t.Errorf("endpoints = %d, %d, want 0, 16382", codes[0], codes[63])
	}
}

func TestImport_NoEnvelope(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "flat.tfw")
	writeWAV(t, in, []int16{-100, 100, -100, 100})

	if _, err := run(t, "import", in, "--out", out, "--no-envelope"); err != nil {
		t.Fatalf("import error = %v", err)
	}

	hdr, err := tfw.ReadFileHeader(out)
	if err != nil {
		t.Fatalf("ReadFileHeader() error = %v", err)
	}
	if hdr.HasEnvelope() {
		t.Error("HasEnvelope() = true, want false")
	}
	if hdr.SampleCount != 4 {
		t.Errorf("SampleCount = %d, want 4", hdr.SampleCount)
	}
}

func TestImport_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "import", path)
	if !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("import error = %v, want %v", err, audio.ErrUnknownFormat)
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	shape := filepath.Join(dir, "shape.tfw")
	if err := tfw.WriteFile(shape, []uint16{0, 8191, 16382, 8191}); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "export", shape, "--rate", "8000", "--cycles", "3"); err != nil {
		t.Fatalf("export error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "shape.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if len(got) != 12 {
		t.Errorf("len = %d, want 12", len(got))
	}
}

func TestExport_RemovesPartialWAV(t *testing.T) {
	dir := t.TempDir()
	shape := filepath.Join(dir, "shape.tfw")
	if err := tfw.WriteFile(shape, []uint16{0, 16382}); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "export", shape, "--cycles", "0"); err == nil {
		t.Fatal("export error = nil, want error for zero cycles")
	}

	if _, err := os.Stat(filepath.Join(dir, "shape.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Stat() error = %v, want output to be removed", err)
	}
}

func TestInfo_TruncatedPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.tfw")
	if err := tfw.WriteFile(path, []uint16{100, 200, 300, 400}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-4], 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "info", path)
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	for _, want := range []string{"Samples:       4 declared, 2 read", "Code range:    100..200"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestRegistryFormats(t *testing.T) {
	got := strings.Join(newRegistry().Formats(), ",")
	if want := "aif,aiff,mp3,ogg,tfw,wav"; got != want {
		t.Errorf("Formats() = %s, want %s", got, want)
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct{ in, ext, want string }{
		{"a/b/capture.wav", ".tfw", "a/b/capture.tfw"},
		{"noext", ".wav", "noext.wav"},
		{"x.tar.gz", ".tfw", "x.tar.tfw"},
	}

	for _, tt := range tests {
		if got := replaceExt(tt.in, tt.ext); got != tt.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}
