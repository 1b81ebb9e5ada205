package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/orthoflow/orthoflow/internal/clock"
	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/migration"
	"github.com/orthoflow/orthoflow/internal/observability"
	"github.com/orthoflow/orthoflow/internal/server"
	"github.com/orthoflow/orthoflow/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
