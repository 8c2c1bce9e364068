package mysql

import (
	"errors"

	"Lee_Blog/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

// Create 分组由后台流程创建，没有对外接口
func (r *GroupRepository) Create(g *model.Group) error {
	return r.DB.Create(g).Error
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (r *GroupRepository) ExistsByID(id uint64) (bool, error) {
	var group model.Group
	err := r.DB.Select("id").First(&group, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
