package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorKind tells handlers how a failed query should be reported.
type ErrorKind int

const (
	KindQuery ErrorKind = iota
	KindUnavailable
	KindTimeout
	KindCanceled
)

const (
	// connectionExceptionClass is SQLSTATE class 08, connection exception.
	connectionExceptionClass = "08"
	// queryCanceledCode is sent back by the server after a cancel request or
	// when statement_timeout fires.
	queryCanceledCode = "57014"
)

// ClassifyQuery classifies err using the context the query ran under. The
// drivers report an expired or canceled context as a server side cancel
// (57014), so the context is checked before the error.
func ClassifyQuery(ctx context.Context, err error) ErrorKind {
	if err == nil {
		return KindQuery
	}
	if ctx != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return KindTimeout
		case errors.Is(ctx.Err(), context.Canceled):
			return KindCanceled
		}
	}
	return Classify(err)
}

// Classify inspects an error returned by a repository. Errors from both
// drivers are recognised.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindQuery
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, driver.ErrBadConn), errors.Is(err, sql.ErrConnDone):
		return KindUnavailable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case string(pqErr.Code.Class()) == connectionExceptionClass:
			return KindUnavailable
		case string(pqErr.Code) == queryCanceledCode:
			return KindTimeout
		}
		return KindQuery
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == connectionExceptionClass:
			return KindUnavailable
		case pgErr.Code == queryCanceledCode:
			return KindTimeout
		}
		return KindQuery
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return KindUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindUnavailable
	}

	return KindQuery
}

func IsUnavailable(err error) bool {
	return err != nil && Classify(err) == KindUnavailable
}
