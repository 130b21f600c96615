package repository

import "errors"

var (
	ErrUserNotFound   = errors.New("пользователь не найден")
	ErrPostNotFound   = errors.New("пост не найден")
	ErrDuplicateEmail = errors.New("пользователь с таким email уже существует")
	ErrDuplicateTitle = errors.New("пост с таким заголовком уже существует")
	ErrBadPassword    = errors.New("неверный пароль")
)
