package repository

import "context"

// KVStore define el puerto de persistencia clave-valor donde se serializa cada colección (DIP).
// Get devuelve found=false cuando la clave no existe; el valor es el JSON tal cual se guardó.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
