package persist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/internal/state/model"
	"tide/shared/constant"
)

type fileDriver struct {
	path string
	otel otel.Otel
}

// NewFile writes the document as a single JSON file. Saves go through a
// temp file and rename so a crash mid-write never leaves a torn document.
func NewFile(path string, ot otel.Otel) Driver {
	return &fileDriver{
		path: path,
		otel: ot,
	}
}

func (d *fileDriver) Load(ctx context.Context) (doc model.Document, ok bool, err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "FileDriver.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Document{}, false, nil
		}

		log.Error().Err(err).Str("path", d.path).Msg("[FileDriver] Failed to read state file")

		return model.Document{}, false, errors.Wrap(err, "reading state file")
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Str("path", d.path).Msg("[FileDriver] Failed to decode state file")

		return model.Document{}, false, errors.Wrap(err, "decoding state file")
	}

	return doc, true, nil
}

func (d *fileDriver) Save(ctx context.Context, doc model.Document) (err error) {
	_, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "FileDriver.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding state document")
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".tmp-*")
	if err != nil {
		log.Error().Err(err).Str("path", d.path).Msg("[FileDriver] Failed to create temp state file")

		return errors.Wrap(err, "creating temp state file")
	}

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "writing temp state file")
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "closing temp state file")
	}

	if err = os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		log.Error().Err(err).Str("path", d.path).Msg("[FileDriver] Failed to replace state file")

		return errors.Wrap(err, "replacing state file")
	}

	return nil
}
