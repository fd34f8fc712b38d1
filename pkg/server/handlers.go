package server

import (
	"Agora/handler"
	"Agora/internal/module/user"
)

type Handlers struct {
	Category *handler.CategoryHandler
	Topic    *handler.TopicHandler
	Reply    *handler.ReplyHandler
	User     *user.Handler
}
