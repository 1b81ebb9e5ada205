package vendors

import (
	"github.com/orthoflow/orthoflow/internal/vendors/repository"
	"github.com/orthoflow/orthoflow/internal/vendors/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vendors.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
