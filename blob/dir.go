package blob

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/byteserve/byteserve"
)

// Dir serves plain files below a root directory. Open file handles can
// seek, so pair it with rangestream.SeekStreamer for ranged responses.
type Dir struct {
	Root string
}

// Open returns the file with the given slash-separated name relative
// to the root. Names are cleaned rooted, so directory traversal like
// "../../etc/passwd" cannot escape the root.
func (d Dir) Open(name string) (io.ReadCloser, byteserve.Metadata, error) {
	clean := path.Clean("/" + name)
	f, err := os.Open(filepath.Join(d.Root, filepath.FromSlash(clean)))
	if err != nil {
		return nil, byteserve.Metadata{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, byteserve.Metadata{}, err
	}
	if info.IsDir() {
		f.Close()
		return nil, byteserve.Metadata{}, fs.ErrNotExist
	}
	meta := byteserve.Metadata{
		Filename:  info.Name(),
		Size:      info.Size(),
		Timestamp: info.ModTime(),
	}
	return f, meta, nil
}
