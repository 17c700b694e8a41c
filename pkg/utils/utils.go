package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateDate(date string) error
}

type utils struct {
}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// ValidateDate checks a calendar date in YYYY-MM-DD form, the only date
// format persisted by the store.
func (u *utils) ValidateDate(date string) error {
	_, err := time.Parse("2006-01-02", date)
	return err
}
