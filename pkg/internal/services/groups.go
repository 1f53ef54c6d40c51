package services

import (
	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func SearchGroups(take int, offset int, probe string) ([]models.Group, error) {
	probe = "%" + probe + "%"

	var groups []models.Group
	err := database.C.Where("alias LIKE ?", probe).Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(alias string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Alias: alias}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(alias, name, description string) (models.Group, error) {
	group := models.Group{
		Alias:       alias,
		Name:        name,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, alias, name, description string) (models.Group, error) {
	group.Alias = alias
	group.Name = name
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup detaches every post filed under the group before removing it.
// Content always outlives its group, the reference just becomes null.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
