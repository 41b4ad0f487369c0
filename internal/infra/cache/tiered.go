package cache

import (
	"context"
	"errors"
	"time"
)

// Store порт кэша, реализуемый Memory и Redis
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Tiered читает сначала из локального кэша, затем из общего; пишет в оба
type Tiered struct {
	local  Store
	shared Store
}

// NewTiered создает двухуровневый кэш
func NewTiered(local, shared Store) *Tiered {
	return &Tiered{
		local:  local,
		shared: shared,
	}
}

// Get возвращает значение из первого уровня, в котором оно есть
func (t *Tiered) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	found, localErr := t.local.Get(ctx, key, dest)
	if found && localErr == nil {
		return true, nil
	}

	found, sharedErr := t.shared.Get(ctx, key, dest)
	if sharedErr != nil {
		return false, errors.Join(localErr, sharedErr)
	}
	if found {
		return true, nil
	}

	return false, localErr
}

// Set записывает значение в оба уровня; ошибка одного уровня не мешает записи в другой
func (t *Tiered) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	localErr := t.local.Set(ctx, key, value, ttl)
	sharedErr := t.shared.Set(ctx, key, value, ttl)
	return errors.Join(localErr, sharedErr)
}
