package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewCategory,
	NewTopic,
	NewReply,
	NewTopicView,
)
