package gorm

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// uniqueViolation is the Postgres error code for unique constraint hits.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// storageErr maps transient connection failures to ErrStorageUnavailable
// and passes everything else through.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if db.Transient(err) {
		return fmt.Errorf("%w: %v", store.ErrStorageUnavailable, err)
	}
	return err
}
