package cmd

import (
	"ordering/internal/adapters/out/memstore"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/ports"
)

// CompositionRoot owns the shared stores and builds every use-case handler
// on top of them. Handlers are cheap value types; stores are singletons so
// all handlers observe the same records.
type CompositionRoot struct {
	dishRepository  ports.DishRepository
	orderRepository ports.OrderRepository
}

func NewCompositionRoot(_ Config) CompositionRoot {
	return CompositionRoot{
		dishRepository:  memstore.NewInMemoryDishRepository(),
		orderRepository: memstore.NewInMemoryOrderRepository(),
	}
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateUpdateDishCommandHandler() commands.UpdateDishCommandHandler {
	return commands.NewUpdateDishCommandHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetAllDishesQueryHandler() queries.GetAllDishesQueryHandler {
	return queries.NewGetAllDishesQueryHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateGetDishQueryHandler() queries.GetDishQueryHandler {
	return queries.NewGetDishQueryHandler(c.dishRepository)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepository)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository)
}
