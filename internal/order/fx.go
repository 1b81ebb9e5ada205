package order

import (
	"github.com/orthoflow/orthoflow/internal/order/policy"
	"github.com/orthoflow/orthoflow/internal/order/repository"
	"github.com/orthoflow/orthoflow/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(policy.NewApproval),
	fx.Provide(service.New),
)
