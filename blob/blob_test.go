package blob

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	rangestream "github.com/byteserve/byteserve/pkg/range-stream"
)

func TestSQLiteStoreRoundtrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "blobs.db"))
	modified := time.Date(2015, time.July, 24, 11, 30, 0, 0, time.UTC)
	if err := store.Put("hello.txt", "", modified, []byte("Hello world")); err != nil {
		t.Fatalf("Error: %v", err)
	}

	src, meta, err := store.Open("hello.txt")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	if meta.Size != 11 || meta.Filename != "hello.txt" {
		t.Fatalf("Metadata is %+v", meta)
	}
	if !meta.Timestamp.Equal(modified) {
		t.Fatalf("Timestamp is %v", meta.Timestamp)
	}
	if body, err := io.ReadAll(src); err != nil || string(body) != "Hello world" {
		t.Fatalf("Body is %s", body)
	}
}

func TestSQLiteStoreReplace(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Put("a", "", time.Now(), []byte("old")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if err := store.Put("a", "", time.Now(), []byte("newer")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	src, meta, err := store.Open("a")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	if meta.Size != 5 {
		t.Fatalf("Size is %d", meta.Size)
	}
}

func TestSQLiteStoreMissing(t *testing.T) {
	store := NewSQLiteStore("")
	if _, _, err := store.Open("no-such-blob"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Error is %v", err)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Put("a", "", time.Now(), []byte("x")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if err := store.Delete("a"); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if store.Has("a") {
		t.Fatal("Blob still exists")
	}
}

func TestSQLiteStoreExplicitContentType(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Put("data.bin", "application/x-custom", time.Now(), []byte("x")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	_, meta, err := store.Open("data.bin")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	if meta.Ctype != "application/x-custom" {
		t.Fatalf("Ctype is %s", meta.Ctype)
	}
}

func TestSQLiteStoreSourceSeeks(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Put("seek.txt", "", time.Now(), []byte("0123456789")); err != nil {
		t.Fatalf("Error: %v", err)
	}
	src, _, err := store.Open("seek.txt")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	body := rangestream.SeekStreamer{}.Stream(src, 4, 3)
	if got, err := io.ReadAll(body); err != nil || string(got) != "456" {
		t.Fatalf("Body is %s", got)
	}
}

func writeTestZip(t *testing.T) string {
	t.Helper()
	zippath := filepath.Join(t.TempDir(), "test.zip")
	f, err := os.Create(zippath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("docs/index.html")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<html>Hello world</html>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return zippath
}

func TestZipFileMember(t *testing.T) {
	zf, err := OpenZip(writeTestZip(t))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer zf.Close()

	src, meta, err := zf.Open("docs/index.html")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	if meta.Filename != "index.html" || meta.Size != 24 {
		t.Fatalf("Metadata is %+v", meta)
	}
	if body, err := io.ReadAll(src); err != nil || string(body) != "<html>Hello world</html>" {
		t.Fatalf("Body is %s", body)
	}
}

func TestZipFileMemberRange(t *testing.T) {
	zf, err := OpenZip(writeTestZip(t))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer zf.Close()

	src, _, err := zf.Open("docs/index.html")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	// decompressed streams cannot seek, chunked streaming still works
	body := rangestream.ChunkStreamer{ChunkSize: 4}.Stream(src, 6, 11)
	if got, err := io.ReadAll(body); err != nil || string(got) != "Hello world" {
		t.Fatalf("Body is %s", got)
	}
}

func TestZipFileMissingMember(t *testing.T) {
	zf, err := OpenZip(writeTestZip(t))
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer zf.Close()

	if _, _, err := zf.Open("no/such/member"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Error is %v", err)
	}
}

func TestDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "foo.txt"), []byte("file content"), 0644); err != nil {
		t.Fatal(err)
	}

	src, meta, err := Dir{Root: root}.Open("foo.txt")
	if err != nil {
		t.Fatalf("Error: %v", err)
	}
	defer src.Close()
	if meta.Filename != "foo.txt" || meta.Size != 12 {
		t.Fatalf("Metadata is %+v", meta)
	}
	if body, err := io.ReadAll(src); err != nil || string(body) != "file content" {
		t.Fatalf("Body is %s", body)
	}
}

func TestDirConfinesTraversal(t *testing.T) {
	root := t.TempDir()
	if _, _, err := (Dir{Root: root}).Open("../../../etc/passwd"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Error is %v", err)
	}
}

func TestDirRejectsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, _, err := (Dir{Root: root}).Open("sub"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Error is %v", err)
	}
}

var (
	_ SourceProvider = SQLiteStore{}
	_ SourceProvider = &ZipFile{}
	_ SourceProvider = Dir{}
)
