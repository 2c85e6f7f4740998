package postgres

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE classes and codes treated as transient.
const (
	sqlstateClassConnection   = "08" // connection exceptions
	sqlstateClassInsufficient = "53" // insufficient resources
	sqlstateAdminShutdown     = "57P01"
	sqlstateCrashShutdown     = "57P02"
	sqlstateCannotConnectNow  = "57P03"
)

// isTransient reports whether the error signals a storage outage rather than
// a logic failure: connection loss, resource exhaustion, or server shutdown.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if len(pgErr.Code) >= 2 {
			class := pgErr.Code[:2]
			if class == sqlstateClassConnection || class == sqlstateClassInsufficient {
				return true
			}
		}
		switch pgErr.Code {
		case sqlstateAdminShutdown, sqlstateCrashShutdown, sqlstateCannotConnectNow:
			return true
		}
	}

	return pgconn.Timeout(err)
}
