package service

import (
	"Shotshelf/dao"
	"Shotshelf/dao/cache"
	"Shotshelf/pkg/figma"
	"Shotshelf/pkg/llm"

	"github.com/google/wire"
)

// CategorizeSet 命令行单独跑分类时只需要这部分依赖
var CategorizeSet = wire.NewSet(
	wire.Bind(new(ImageRepository), new(*dao.Image)),
	wire.Bind(new(ImageClassifier), new(*llm.Classifier)),
	NewStorageService,

	wire.Struct(new(CategorizeService), "*"),
	wire.Bind(new(ICategorizeService), new(*CategorizeService)),
)

var ProviderSet = wire.NewSet(
	CategorizeSet,

	wire.Bind(new(GroupRepository), new(*dao.Group)),
	wire.Bind(new(ExportRepository), new(*dao.Export)),
	wire.Bind(new(ManifestCache), new(*cache.ManifestStorage)),
	wire.Bind(new(DesignFileCreator), new(*figma.Client)),

	wire.Struct(new(GroupService), "*"),
	wire.Bind(new(IGroupService), new(*GroupService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(ExportService), "*"),
	wire.Bind(new(IExportService), new(*ExportService)),
)
