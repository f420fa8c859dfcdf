package mq

import "errors"

// TempError marks a handler failure worth another delivery attempt.
type TempError struct {
	Err error
}

func (e TempError) Error() string {
	return e.Err.Error()
}

func (e TempError) Unwrap() error {
	return e.Err
}

func (e TempError) Temporary() bool {
	return true
}

func Temporary(err error) error {
	if err == nil {
		return nil
	}
	return TempError{Err: err}
}

// IsTemporary reports whether err, or anything it wraps, asks to be requeued.
func IsTemporary(err error) bool {
	var temp interface{ Temporary() bool }
	return errors.As(err, &temp) && temp.Temporary()
}
