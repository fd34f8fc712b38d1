package dao

import (
	"Agora/models"

	"gorm.io/gorm"
)

// Tables 论坛核心表
func Tables() []any {
	return []any{
		&models.Category{},
		&models.Topic{},
		&models.Reply{},
		&models.TopicView{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables()...)
}
