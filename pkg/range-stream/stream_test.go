package rangestream

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// forwardOnly hides the Seek method of the underlying reader.
type forwardOnly struct {
	io.Reader
}

func content(size int) []byte {
	c := make([]byte, size)
	for i := range c {
		c[i] = byte(i % 251)
	}
	return c
}

func TestChunkStreamerExactRange(t *testing.T) {
	c := content(10000)
	body := ChunkStreamer{}.Stream(forwardOnly{bytes.NewReader(c)}, 100, 200)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !bytes.Equal(got, c[100:300]) {
		t.Fatalf("Body is %d bytes, starting %v", len(got), got[:4])
	}
}

func TestChunkStreamerChunkBoundaries(t *testing.T) {
	c := content(10000)
	for _, chunk := range []int64{1, 3, 7, 100, 8192, DefaultChunkSize} {
		body := ChunkStreamer{ChunkSize: chunk}.Stream(forwardOnly{bytes.NewReader(c)}, 999, 2001)
		got, err := io.ReadAll(body)
		if err != nil {
			t.Fatalf("Error with chunk size %d: %v", chunk, err)
		}
		if !bytes.Equal(got, c[999:3000]) {
			t.Fatalf("Wrong body with chunk size %d", chunk)
		}
	}
}

func TestChunkStreamerWholeSource(t *testing.T) {
	c := content(5000)
	body := ChunkStreamer{}.Stream(forwardOnly{bytes.NewReader(c)}, 0, 5000)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !bytes.Equal(got, c) {
		t.Fatalf("Body is %d bytes", len(got))
	}
}

func TestChunkStreamerStopsOnExhaustedSource(t *testing.T) {
	body := ChunkStreamer{ChunkSize: 10}.Stream(strings.NewReader("0123456789"), 4, 100)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if string(got) != "456789" {
		t.Fatalf("Body is %q", got)
	}
}

func TestChunkStreamerOffsetPastSource(t *testing.T) {
	body := ChunkStreamer{ChunkSize: 4}.Stream(strings.NewReader("0123456789"), 20, 5)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Body is %q", got)
	}
}

func TestChunkStreamerIsLazy(t *testing.T) {
	// constructing the body must not touch the source
	ChunkStreamer{}.Stream(failingReader{}, 100, 200)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	panic("source read before body was drained")
}

func TestSeekStreamerExactRange(t *testing.T) {
	c := content(10000)
	body := SeekStreamer{}.Stream(bytes.NewReader(c), 100, 200)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !bytes.Equal(got, c[100:300]) {
		t.Fatalf("Body is %d bytes", len(got))
	}
}

func TestSeekStreamerBoundedReads(t *testing.T) {
	c := content(1000)
	body := SeekStreamer{}.Stream(bytes.NewReader(c), 990, 10)
	buf := make([]byte, 100)
	n, _ := body.Read(buf)
	if n != 10 {
		t.Fatalf("Read %d bytes", n)
	}
	if n, err := body.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("Read %d bytes with error %v after budget was spent", n, err)
	}
}

func TestSeekStreamerFallsBackWithoutSeek(t *testing.T) {
	c := content(10000)
	body := SeekStreamer{}.Stream(forwardOnly{bytes.NewReader(c)}, 2000, 500)
	got, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if !bytes.Equal(got, c[2000:2500]) {
		t.Fatalf("Body is %d bytes", len(got))
	}
}

func TestStreamersAgree(t *testing.T) {
	c := content(4096)
	for _, r := range []struct{ offset, length int64 }{
		{0, 1}, {0, 4096}, {1, 4095}, {4095, 1}, {1000, 1000}, {313, 17},
	} {
		chunked, err := io.ReadAll(ChunkStreamer{ChunkSize: 100}.Stream(forwardOnly{bytes.NewReader(c)}, r.offset, r.length))
		if err != nil {
			t.Fatalf("Error: %v", err)
		}
		seeked, err := io.ReadAll(SeekStreamer{}.Stream(bytes.NewReader(c), r.offset, r.length))
		if err != nil {
			t.Fatalf("Error: %v", err)
		}
		if !bytes.Equal(chunked, seeked) || !bytes.Equal(chunked, c[r.offset:r.offset+r.length]) {
			t.Fatalf("Strategies disagree for range %+v", r)
		}
	}
}
