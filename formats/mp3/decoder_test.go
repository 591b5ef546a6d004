// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/afgtfw/audio"
)

// mockMP3Reader serves 16-bit little-endian PCM the way gomp3.Decoder does.
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	err        error
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	count := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range count {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += count

	if m.offset >= len(m.samples) {
		return count * 2, io.EOF
	}
	return count * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{sampleRate: 44100}, sampleRate: 44100}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	pcm := []int16{0, 16384, -16384, -32768, 8192, -8192}
	src := &source{dec: &mockMP3Reader{sampleRate: 8000, samples: pcm}, sampleRate: 8000}

	got, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if len(got) != len(pcm) {
		t.Fatalf("len = %d, want %d", len(got), len(pcm))
	}
	for i, v := range pcm {
		if want := float32(v) / 32768; got[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_SmallReads(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{samples: []int16{1, 2, 3}}}
	dst := make([]float32, 2)

	n, err := src.ReadSamples(dst)
	if n != 2 || err != nil {
		t.Fatalf("first read = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || err != nil {
		t.Fatalf("second read = (%d, %v), want (1, nil)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("third read = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	corrupt := errors.New("corrupt frame")
	src := &source{dec: &mockMP3Reader{err: corrupt}}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, corrupt) {
		t.Errorf("ReadSamples() error = %v, want %v", err, corrupt)
	}
}

func TestSource_EmptyDestination(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{samples: []int16{1}}}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	pcm := make([]int16, 4096)
	dst := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := &source{dec: &mockMP3Reader{samples: pcm}, buf: make([]byte, 8192)}
		_, _ = src.ReadSamples(dst)
	}
}
