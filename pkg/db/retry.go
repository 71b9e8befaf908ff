package db

import (
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"syscall"
)

// Transient reports whether err looks like a broken or dropped database
// connection. Constraint violations and other SQL-level errors are not
// transient.
func Transient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// RetryOnce runs op, and runs it one more time if the first attempt failed
// with a transient connection error. The underlying pool re-establishes the
// connection between attempts. Any second failure is returned as-is.
func RetryOnce(op func() error) error {
	err := op()
	if err == nil || !Transient(err) {
		return err
	}
	return op()
}
