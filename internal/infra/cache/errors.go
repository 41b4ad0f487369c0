package cache

import "errors"

var (
	// ErrEncode возвращается, если значение не удалось сериализовать
	ErrEncode = errors.New("cache: failed to encode value")

	// ErrDecode возвращается, если закэшированное значение не удалось десериализовать
	ErrDecode = errors.New("cache: failed to decode value")

	// ErrBackend возвращается при ошибке хранилища кэша (Redis)
	ErrBackend = errors.New("cache: backend error")
)
