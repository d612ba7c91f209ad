//go:build !unix

package util

import "os"

func checkReadAccess(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	return file.Close()
}
