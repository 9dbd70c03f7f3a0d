package persist

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tide/infras/otel"
	"tide/infras/postgres"
	"tide/internal/state/model"
	"tide/shared/constant"
)

// The whole document lives in a single jsonb row. State is small and always
// read and written as a unit, so there is nothing to gain from normalizing it.
const (
	queryLoadSnapshot = `SELECT document FROM state_snapshot WHERE id = 1`
	querySaveSnapshot = `
		INSERT INTO state_snapshot (id, document, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()`
)

type postgresDriver struct {
	conn *postgres.Connection
	otel otel.Otel
}

func NewPostgres(conn *postgres.Connection, ot otel.Otel) Driver {
	return &postgresDriver{
		conn: conn,
		otel: ot,
	}
}

func (d *postgresDriver) Load(ctx context.Context) (doc model.Document, ok bool, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "PostgresDriver.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	var raw []byte
	if err = d.conn.DB.GetContext(ctx, &raw, queryLoadSnapshot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Document{}, false, nil
		}

		log.Error().Err(err).Msg("[PostgresDriver] Failed to load state snapshot")

		return model.Document{}, false, errors.Wrap(err, "loading state snapshot")
	}

	if err = json.Unmarshal(raw, &doc); err != nil {
		log.Error().Err(err).Msg("[PostgresDriver] Failed to decode state snapshot")

		return model.Document{}, false, errors.Wrap(err, "decoding state snapshot")
	}

	return doc, true, nil
}

func (d *postgresDriver) Save(ctx context.Context, doc model.Document) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelPersistScopeName, "PostgresDriver.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encoding state document")
	}

	if _, err = d.conn.DB.ExecContext(ctx, querySaveSnapshot, raw); err != nil {
		log.Error().Err(err).Msg("[PostgresDriver] Failed to save state snapshot")

		return errors.Wrap(err, "saving state snapshot")
	}

	return nil
}
