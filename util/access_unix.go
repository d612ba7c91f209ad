//go:build unix

package util

import (
	"errors"

	"github.com/avast/retry-go"
	"golang.org/x/sys/unix"
)

const accessAttempts = 3

func checkReadAccess(filePath string) error {
	return retry.Do(
		func() error {
			return unix.Access(filePath, unix.R_OK)
		},
		retry.Attempts(accessAttempts),
		retry.Delay(0),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, unix.EINTR)
		}),
	)
}
