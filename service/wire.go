package service

import (
	"Agora/dao"
	"Agora/pkg/clock"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	clock.New,

	wire.Struct(new(SlugGenerator), "*"),
	wire.Bind(new(SlugChecker), new(*dao.Topic)),

	wire.Struct(new(ViewService), "*"),
	wire.Bind(new(IViewService), new(*ViewService)),

	wire.Struct(new(ReplyService), "*"),
	wire.Bind(new(IReplyService), new(*ReplyService)),

	wire.Struct(new(TopicService), "*"),
	wire.Bind(new(ITopicService), new(*TopicService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),
)
