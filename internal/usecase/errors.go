package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
	ErrNoActiveSearch = errors.New("no active search")
	ErrNoListings     = errors.New("no listings match the export filters")
)
