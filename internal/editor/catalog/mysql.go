package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PresetModel model
type PresetModel struct {
	Name      string    `gorm:"column:name;type:varchar(64);comment:预设名称;primaryKey;not null;" json:"name"`
	Data      string    `gorm:"column:data;type:mediumtext;comment:序列化地图;not null;" json:"data"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;" json:"created_at"`
}

func (m *PresetModel) TableName() string {
	return "map_preset"
}

type MySQL struct {
	db *gorm.DB
}

func NewMySQL(db *gorm.DB) *MySQL {
	return &MySQL{
		db: db,
	}
}

func (r *MySQL) Lookup(ctx context.Context, name string) (string, error) {
	var preset PresetModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&preset).Error
	if err == nil {
		return preset.Data, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", notFound(name)
	}
	return "", ErrUnavailable.WithData("preset", name).WithCause(err)
}

func (r *MySQL) Names(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&PresetModel{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, ErrUnavailable.WithCause(err)
	}
	return names, nil
}
