package mysql

import (
	"errors"

	"gorm.io/gorm"
)

// notFound swaps gorm's record-not-found for the domain sentinel.
func notFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
