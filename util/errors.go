package util

const (
	ERROR_BAD_INPUT_PATH   = 201
	ERROR_BAD_PATTERN      = 202
	ERROR_BAD_VERSION      = 203
	ERROR_VERSION_TOO_OLD  = 204
	ERROR_NO_HOME_DIR      = 205
	ERROR_UNREADABLE       = 206
	ERROR_UNDECODABLE_LIST = 207
	ERROR_BAD_WORKERS      = 101
)

type ErrorWithCode struct {
	StatusCode    int
	InternalError error
}

var _ error = &ErrorWithCode{}

func (e ErrorWithCode) Error() string {
	return e.InternalError.Error()
}

func (e ErrorWithCode) Unwrap() error {
	return e.InternalError
}
