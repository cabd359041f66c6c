package clients

import "context"

// Repository persiste fichas de clientes. Delete cascadea a las
// mascotas del cliente: esa regla es del storage, no de la aplicación.
type Repository interface {
	Create(ctx context.Context, c Client) error
	Update(ctx context.Context, c Client) error
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
	Delete(ctx context.Context, id string) error
}
