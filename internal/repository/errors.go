package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/trainops/coursedesk/internal/domain"
)

// pgDeadlockDetected / pgLockNotAvailable: the transaction lost a lock
// race; the whole operation may be retried by the caller.
const (
	pgUniqueViolation  = "23505"
	pgDeadlockDetected = "40P01"
	pgLockNotAvailable = "55P03"
)

// mapLockErr converts lock-contention failures into the domain
// concurrency sentinel; every other error passes through unchanged.
func mapLockErr(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgDeadlockDetected, pgLockNotAvailable:
			return domain.ErrConcurrencyConflict
		}
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
