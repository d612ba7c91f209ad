package util

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

const (
	VERSION_MAJOR = 0
	VERSION_MINOR = 4
	VERSION_MICRO = 0

	cryptoBackend = "gocrypto"
	compression   = "zlib"
)

var ErrInvalidVersion = errors.New("invalid version")

// LibraryVersionInt is the packed form of the library version, comparable
// with values built by VersionInt.
const LibraryVersionInt = VERSION_MAJOR<<16 | VERSION_MINOR<<8 | VERSION_MICRO

// VersionInt packs a version triple into a single comparable integer.
func VersionInt(major, minor, micro int) int {
	return major<<16 | minor<<8 | micro
}

func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", VERSION_MAJOR, VERSION_MINOR, VERSION_MICRO)
}

// Version returns the descriptive version string when the library is at
// least as new as required. Passing 0 always succeeds.
//
//	if _, ok := util.Version(util.VersionInt(0, 2, 1)); !ok {
//		log.Fatal("library version is too old")
//	}
func Version(required int) (string, bool) {
	if required > LibraryVersionInt {
		return "", false
	}
	return strings.Join([]string{VersionString(), runtime.Version(), cryptoBackend, compression}, "/"), true
}

// ParseVersion converts "major[.minor[.micro]]" into its VersionInt form.
func ParseVersion(version string) (int, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: too many components in '%v'", ErrInvalidVersion, version)
	}

	numbers := [3]int{}
	for i, part := range parts {
		number, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("%w: '%v': %v", ErrInvalidVersion, version, err)
		}
		if number < 0 || number > 0xff {
			return 0, fmt.Errorf("%w: component %v out of range in '%v'", ErrInvalidVersion, number, version)
		}
		numbers[i] = number
	}
	return VersionInt(numbers[0], numbers[1], numbers[2]), nil
}
