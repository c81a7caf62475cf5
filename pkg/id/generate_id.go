package id

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewUID returns a random RFC 4122 v4 id in canonical 36-char form.
func NewUID() string { return uuid.NewString() }

// ValidUID reports whether s parses as a uuid.
func ValidUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

const jobNumberPrefix = "BARK"

var ErrBadJobNumber = errors.New("malformed job number")

// FormatJobNumber renders BARK-<year>-<seq>, seq zero-padded to 4 digits.
func FormatJobNumber(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", jobNumberPrefix, year, seq)
}

// JobNumberPrefix is the LIKE prefix shared by all numbers of a year.
func JobNumberPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", jobNumberPrefix, year)
}

func ParseJobNumber(s string) (year, seq int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 || parts[0] != jobNumberPrefix {
		return 0, 0, ErrBadJobNumber
	}
	if year, err = strconv.Atoi(parts[1]); err != nil || year <= 0 {
		return 0, 0, ErrBadJobNumber
	}
	if seq, err = strconv.Atoi(parts[2]); err != nil || seq <= 0 {
		return 0, 0, ErrBadJobNumber
	}
	return year, seq, nil
}
