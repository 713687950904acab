//go:build wireinject
// +build wireinject

package main

import (
	"Shotshelf/config"
	"Shotshelf/dao"
	"Shotshelf/dao/cache"
	"Shotshelf/handler"
	"Shotshelf/pkg/client"
	"Shotshelf/pkg/database"
	"Shotshelf/pkg/figma"
	"Shotshelf/pkg/llm"
	"Shotshelf/pkg/server"
	"Shotshelf/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideLLMConfig,
		config.ProvideFigmaConfig,
		config.ProvideCategorizeConfig,
		llm.NewClassifier,
		figma.NewClient,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.GroupHandler), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Categorize), "*"),
		wire.Struct(new(handler.Export), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}

func InitCategorizer(cfg *config.Config) service.ICategorizeService {
	wire.Build(
		database.NewDB,
		dao.NewImage,
		config.ProvideOssConfig,
		config.ProvideLLMConfig,
		config.ProvideCategorizeConfig,
		llm.NewClassifier,
		service.CategorizeSet,
	)
	return nil
}
