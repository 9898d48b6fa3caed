package conflict

import "errors"

var (
	// ErrInternal возвращается при ошибках обращения к хранилищу
	ErrInternal = errors.New("conflict: internal error")
)
