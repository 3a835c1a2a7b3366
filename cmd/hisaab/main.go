package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tipaniya/hisaab/internal/config"
	"github.com/tipaniya/hisaab/internal/migration"
	"github.com/tipaniya/hisaab/internal/server"
	"github.com/tipaniya/hisaab/pkg/db"
	"github.com/tipaniya/hisaab/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// HTTP server plus every domain module it serves
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
