package document

import (
	"github.com/orthoflow/orthoflow/internal/document/repository"
	"github.com/orthoflow/orthoflow/internal/document/storage"
	"go.uber.org/fx"
)

var Module = fx.Module("document",
	fx.Provide(repository.Provide),
	fx.Provide(fx.Annotate(storage.NewLocalStore, fx.As(new(storage.Store)))),
)
