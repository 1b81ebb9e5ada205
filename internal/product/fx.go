package product

import (
	"github.com/orthoflow/orthoflow/internal/product/repository"
	"github.com/orthoflow/orthoflow/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
