package service

import "errors"

var (
	ErrSameToken       = errors.New("from and to tokens are equal")
	ErrSessionNotFound = errors.New("session not found")
)
