// Package blob supplies byte sources for response construction: plain
// files, ZIP archive members, and named blobs stored in SQLite.
package blob

import (
	"bytes"
	"database/sql"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/byteserve/byteserve"

	_ "github.com/glebarez/go-sqlite"
)

// SourceProvider opens named byte sources together with the metadata
// needed to build a response for them.
//
// The returned body is exclusively owned by the caller, which is also
// responsible for closing it. Open returns an error wrapping
// fs.ErrNotExist when no source with the given name exists.
type SourceProvider interface {
	Open(name string) (io.ReadCloser, byteserve.Metadata, error)
}

// SQLiteStore keeps named blobs in a SQLite database and serves them
// as seekable sources, so it pairs well with rangestream.SeekStreamer.
//
// It is safe for concurrent use.
type SQLiteStore struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLiteStore creates a new blob store with the given filename as
// the db. If file name is empty, a new in-memory db is opened.
func NewSQLiteStore(filename string) SQLiteStore {
	if filename == "" {
		filename = "file::memory:?cache=shared"
	}
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		panic(err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS blob (
		name TEXT PRIMARY KEY,
		content_type TEXT,
		modified INTEGER,
		bytes BLOB
	)`)
	if err != nil {
		panic(err)
	}
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		panic(err)
	}
	return SQLiteStore{
		db:         db,
		writeMutex: &sync.Mutex{},
	}
}

// Open returns the blob with the given name. The stored content type,
// if any, becomes the explicit type of the metadata; otherwise the
// type is derived from the blob name.
func (s SQLiteStore) Open(name string) (io.ReadCloser, byteserve.Metadata, error) {
	row := s.db.QueryRow(`SELECT content_type, modified, bytes
		FROM blob WHERE name = ?`, name)
	var contentType string
	var modified int64
	var content []byte
	if err := row.Scan(&contentType, &modified, &content); err != nil {
		if err == sql.ErrNoRows {
			return nil, byteserve.Metadata{}, fs.ErrNotExist
		}
		return nil, byteserve.Metadata{}, err
	}
	meta := byteserve.Metadata{
		Ctype:     contentType,
		Filename:  name,
		Size:      int64(len(content)),
		Timestamp: time.Unix(modified, 0),
	}
	return seekableSource{bytes.NewReader(content)}, meta, nil
}

// Put stores the blob under the given name, replacing any previous
// content. An empty content type means the type is derived from the
// name when serving.
func (s SQLiteStore) Put(name, contentType string, modified time.Time, content []byte) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec(`INSERT INTO blob (name, content_type, modified, bytes)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			content_type = excluded.content_type,
			modified = excluded.modified,
			bytes = excluded.bytes`,
		name, contentType, modified.Unix(), content)
	return err
}

// Delete removes the blob with the given name.
func (s SQLiteStore) Delete(name string) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.Exec("DELETE FROM blob WHERE name = ?", name)
	return err
}

// Has checks if a blob with the given name exists.
func (s SQLiteStore) Has(name string) bool {
	row := s.db.QueryRow("SELECT 1 FROM blob WHERE name = ?", name)
	var one int
	return row.Scan(&one) == nil
}

// seekableSource keeps the Seek method visible through the ReadCloser,
// so that seek-based streaming can use it.
type seekableSource struct {
	*bytes.Reader
}

func (seekableSource) Close() error {
	return nil
}
