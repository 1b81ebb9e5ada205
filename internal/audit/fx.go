package audit

import (
	"github.com/orthoflow/orthoflow/internal/audit/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("audit",
	fx.Provide(repository.Provide),
)
