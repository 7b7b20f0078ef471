package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/byteserve/byteserve"
	"github.com/byteserve/byteserve/blob"
	rangestream "github.com/byteserve/byteserve/pkg/range-stream"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

var (
	// CLI flags
	portFlag           int
	dirFlag            string
	zipFlag            string
	dbFilenameFlag     string
	configFilenameFlag string
	attachmentFlag     bool
	verbosityTraceFlag bool
	logFilenameFlag    string

	// this is set by goreleaser
	version string
)

func init() {
	flag.IntVar(&portFlag, "port", 8080, "Port to listen on")
	flag.StringVar(&dirFlag, "dir", "", "Directory to serve under /files/")
	flag.StringVar(&zipFlag, "zip", "", "ZIP archive whose members to serve under /zip/")
	flag.StringVar(&dbFilenameFlag, "db", "blobs.db", "Blob DB file name (use 'memory' for in-memory db)")
	flag.StringVar(&configFilenameFlag, "config", "", "Path to config file with content type mappings")
	flag.BoolVar(&attachmentFlag, "attachment", false, "Serve everything as attachment downloads")
	flag.BoolVar(&verbosityTraceFlag, "vv", false, "Verbosity: trace logging")
	flag.StringVar(&logFilenameFlag, "log-file", "", "Log file to use (in addition to stderr)")

	if version == "" {
		version = "DEV"
	}
}

func main() {
	flag.Parse()

	// set log level, trace if requested
	logLevel := zerolog.DebugLevel
	if verbosityTraceFlag {
		logLevel = zerolog.TraceLevel
	}

	// log to stderr, and additionally to a log file if specified
	logOutput := io.Writer(zerolog.ConsoleWriter{Out: os.Stderr})
	if logFilenameFlag != "" {
		logFile, err := os.OpenFile(logFilenameFlag, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot open log file")
		}
		logOutput = zerolog.MultiLevelWriter(logOutput, logFile)
	}
	log.Logger = log.Level(logLevel).Output(logOutput).
		With().Str("version", version).Logger()

	// content type table, built-in defaults plus config file entries
	table := byteserve.FileConfig{}.Table()
	if configFilenameFlag != "" {
		config, err := byteserve.LoadConfig(configFilenameFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot read config file")
		}
		table = config.Table()
	}

	// files and blobs can seek, zip members cannot
	seekSender := byteserve.New(byteserve.Config{
		ContentTypes: table,
		Streamer:     rangestream.SeekStreamer{},
		Logger:       &log.Logger,
	})
	chunkSender := byteserve.New(byteserve.Config{
		ContentTypes: table,
		Logger:       &log.Logger,
	})

	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("Sent response to client")
	}))

	if dirFlag != "" {
		r.Get("/files/*", serve(seekSender, blob.Dir{Root: dirFlag}, wildcardName))
	}
	if zipFlag != "" {
		zipfile, err := blob.OpenZip(zipFlag)
		if err != nil {
			log.Fatal().Err(err).Msg("Cannot open ZIP archive")
		}
		defer zipfile.Close()
		r.Get("/zip/*", serve(chunkSender, zipfile, wildcardName))
	}

	// set up sqlite blob store
	dbFilename := dbFilenameFlag
	if dbFilename == "memory" {
		dbFilename = "file::memory:?cache=shared"
	}
	store := blob.NewSQLiteStore(dbFilename)
	r.Get("/blobs/{name}", serve(seekSender, store, func(r *http.Request) string {
		return chi.URLParam(r, "name")
	}))
	r.Put("/blobs/{name}", putBlob(store))
	r.Delete("/blobs/{name}", deleteBlob(store))

	log.Info().Msgf("Serving on port %v (dir '%s', zip '%s', db '%s')", portFlag, dirFlag, zipFlag, dbFilename)
	err := http.ListenAndServe(fmt.Sprintf(":%d", portFlag), r)

	if err != nil {
		panic(err)
	}
}

func wildcardName(r *http.Request) string {
	return chi.URLParam(r, "*")
}

// serve builds the handler for one source provider: open the named
// source, construct the response for it, send, close.
func serve(sender *byteserve.Sender, provider blob.SourceProvider, name func(*http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, meta, err := provider.Open(name(r))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			hlog.FromRequest(r).Error().Err(err).Msg("Could not open source")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer src.Close()
		meta.Attachment = attachmentFlag
		result := sender.Send(src, meta, byteserve.FromRequest(r))
		if err := result.Write(w); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("Could not write response body to client")
		}
	}
}

func putBlob(store blob.SQLiteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		err = store.Put(chi.URLParam(r, "name"), r.Header.Get("Content-Type"), time.Now(), content)
		if err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("Could not store blob")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func deleteBlob(store blob.SQLiteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Delete(chi.URLParam(r, "name")); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("Could not delete blob")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
