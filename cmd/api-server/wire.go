//go:build wireinject
// +build wireinject

package main

import (
	"Agora/config"
	"Agora/dao"
	"Agora/handler"
	"Agora/internal/module/user"
	"Agora/pkg/client"
	"Agora/pkg/database"
	"Agora/pkg/server"
	"Agora/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		user.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.CategoryHandler), "*"),
		wire.Struct(new(handler.TopicHandler), "*"),
		wire.Struct(new(handler.ReplyHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
