package payer

import (
	"github.com/orthoflow/orthoflow/internal/payer/repository"
	"github.com/orthoflow/orthoflow/internal/payer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("payer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
