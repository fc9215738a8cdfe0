package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chatbot-admin-api/internal/application/dto"
	"github.com/jhoicas/chatbot-admin-api/internal/domain/entity"
	"github.com/jhoicas/chatbot-admin-api/pkg/logger"
)

// seedOrderDeps deja en el store un rol, un usuario y un producto listos para
// colgar pedidos, y devuelve sus ids.
func seedOrderDeps(t *testing.T, store *memStore, tx TxRunner) (userID, productID int) {
	t.Helper()
	ctx := context.Background()

	roleUC := NewRoleUseCase(store.repoSet().Roles, tx, logger.Nop())
	require.True(t, roleUC.Create(ctx, dto.CreateRoleRequest{RoleName: entity.RoleEndUser}).Success)

	userUC := NewUserUseCase(store.repoSet().Users, tx, logger.Nop())
	u := userUC.Create(ctx, dto.CreateUserRequest{Username: "testuser", Password: "test123", RoleName: entity.RoleEndUser})
	require.True(t, u.Success, u.Message)

	productUC := NewProductUseCase(store.repoSet().Products, tx, logger.Nop())
	p := productUC.Create(ctx, dto.CreateProductRequest{Name: "Jacket", Stock: 50})
	require.True(t, p.Success, p.Message)

	return u.ID, p.ID
}

func TestOrderUseCase_CrearYListar(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())
	ctx := context.Background()

	res := uc.Create(ctx, dto.CreateOrderRequest{
		UserID:            userID,
		ProductID:         productID,
		EstimatedDelivery: "2025-06-10",
	})
	require.True(t, res.Success, res.Message)
	assert.Contains(t, res.Message, "testuser")
	assert.Contains(t, res.Message, "Jacket")

	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, res.ID, list[0].OrderID)
	assert.Equal(t, "testuser", list[0].Username)
	assert.Equal(t, "Jacket", list[0].ProductName)
	assert.Equal(t, entity.StatusPending, list[0].Status, "status ausente -> pending")
	require.NotNil(t, list[0].EstimatedDelivery)
	assert.Equal(t, "2025-06-10", *list[0].EstimatedDelivery)
}

func TestOrderUseCase_CrearSinFechaNiStatus(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())
	ctx := context.Background()

	res := uc.Create(ctx, dto.CreateOrderRequest{UserID: userID, ProductID: productID})
	require.True(t, res.Success, res.Message)

	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatusPending, list[0].Status)
	assert.Nil(t, list[0].EstimatedDelivery)
}

// Producto inexistente: fallo de validación y nada queda persistido.
func TestOrderUseCase_CrearConProductoInexistente(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, _ := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())
	ctx := context.Background()

	res := uc.Create(ctx, dto.CreateOrderRequest{UserID: userID, ProductID: 999})
	assert.False(t, res.Success)
	assert.Equal(t, "producto no encontrado", res.Message)
	assert.Empty(t, uc.List(ctx), "la transacción se revierte completa")
}

func TestOrderUseCase_CrearConUsuarioInexistente(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	_, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())

	res := uc.Create(context.Background(), dto.CreateOrderRequest{UserID: 999, ProductID: productID})
	assert.False(t, res.Success)
	assert.Equal(t, "usuario no encontrado", res.Message)
}

func TestOrderUseCase_CrearConFechaInvalida(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())

	res := uc.Create(context.Background(), dto.CreateOrderRequest{
		UserID:            userID,
		ProductID:         productID,
		EstimatedDelivery: "10/06/2025",
	})
	assert.False(t, res.Success)
	assert.Empty(t, uc.List(context.Background()))
}

func TestOrderUseCase_UpdateParcialYLimpiarFecha(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())
	ctx := context.Background()

	created := uc.Create(ctx, dto.CreateOrderRequest{
		UserID: userID, ProductID: productID,
		Status: "Processing", EstimatedDelivery: "2025-06-12",
	})
	require.True(t, created.Success)

	// Solo status: la fecha queda intacta.
	shipped := "Shipped"
	res := uc.Update(ctx, created.ID, dto.UpdateOrderRequest{Status: &shipped})
	require.True(t, res.Success, res.Message)

	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Shipped", list[0].Status)
	require.NotNil(t, list[0].EstimatedDelivery)
	assert.Equal(t, "2025-06-12", *list[0].EstimatedDelivery)

	// Fecha vacía explícita limpia el valor.
	empty := ""
	res = uc.Update(ctx, created.ID, dto.UpdateOrderRequest{EstimatedDelivery: &empty})
	require.True(t, res.Success, res.Message)
	list = uc.List(ctx)
	assert.Nil(t, list[0].EstimatedDelivery)
	assert.Equal(t, "Shipped", list[0].Status, "el status no se toca")
}

func TestOrderUseCase_Delete(t *testing.T) {
	store := newMemStore()
	tx := &memTxRunner{store: store}
	userID, productID := seedOrderDeps(t, store, tx)
	uc := NewOrderUseCase(store.repoSet().Orders, tx, logger.Nop())
	ctx := context.Background()

	created := uc.Create(ctx, dto.CreateOrderRequest{UserID: userID, ProductID: productID})
	require.True(t, created.Success)

	res := uc.Delete(ctx, created.ID)
	require.True(t, res.Success, res.Message)
	assert.Empty(t, uc.List(ctx))

	res = uc.Delete(ctx, created.ID)
	assert.False(t, res.Success, "eliminar dos veces el mismo pedido falla la segunda")
}
