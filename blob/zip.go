package blob

import (
	"archive/zip"
	"io"
	"io/fs"
	"path"

	"github.com/byteserve/byteserve"
)

// ZipFile serves the members of a ZIP archive. Decompressed member
// streams cannot seek, so ranged responses rely on the chunked
// streaming strategy. The archive stays open for the lifetime of the
// provider; member readers are per-request and closed by the caller.
type ZipFile struct {
	archive *zip.ReadCloser
}

// OpenZip opens the archive at the given path.
func OpenZip(zippath string) (*ZipFile, error) {
	archive, err := zip.OpenReader(zippath)
	if err != nil {
		return nil, err
	}
	return &ZipFile{archive: archive}, nil
}

// Open returns the archived file with the given name (the full path
// within the archive). Size and modification time come from the
// member's header; the content type is derived from its base name.
func (z *ZipFile) Open(name string) (io.ReadCloser, byteserve.Metadata, error) {
	for _, member := range z.archive.File {
		if member.Name != name || member.FileInfo().IsDir() {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			return nil, byteserve.Metadata{}, err
		}
		meta := byteserve.Metadata{
			Filename:  path.Base(member.Name),
			Size:      int64(member.UncompressedSize64),
			Timestamp: member.Modified,
		}
		return rc, meta, nil
	}
	return nil, byteserve.Metadata{}, fs.ErrNotExist
}

// Close closes the underlying archive file.
func (z *ZipFile) Close() error {
	return z.archive.Close()
}
