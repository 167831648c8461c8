package client

import "errors"

var (
	ErrMissingCommand  = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing command argument")
	ErrTooManyArgs     = errors.New("too many command arguments")
	ErrInvalidLine     = errors.New("invalid jsonl line")
	ErrInvalidAge      = errors.New("invalid purge age")
)
