package services

import (
	"errors"
	"fmt"

	"github.com/mirrorfield/chronicle/pkg/internal/database"
	"github.com/mirrorfield/chronicle/pkg/internal/models"
	"gorm.io/gorm"
)

func GetAuthor(name string) (models.Author, error) {
	var author models.Author
	if err := database.C.Where("name = ?", name).First(&author).Error; err != nil {
		return author, err
	}
	return author, nil
}

func GetAuthorWithID(id uint) (models.Author, error) {
	var author models.Author
	if err := database.C.Where(models.Author{
		BaseModel: models.BaseModel{ID: id},
	}).First(&author).Error; err != nil {
		return author, err
	}
	return author, nil
}

// EnsureAuthor looks the writing identity up by account and creates it on the
// first write, so nobody has to register an author profile explicitly.
func EnsureAuthor(user models.Account) (models.Author, error) {
	var author models.Author
	if err := database.C.Where("account_id = ?", user.ID).First(&author).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return author, fmt.Errorf("unable to get author: %v", err)
		}
	} else {
		return author, nil
	}

	author = models.Author{
		Name:      user.Name,
		Nick:      user.Nick,
		AccountID: user.ID,
	}

	if err := database.C.Create(&author).Error; err != nil {
		return author, err
	}
	return author, nil
}

func EditAuthor(user models.Account, author models.Author) (models.Author, error) {
	if author.AccountID != user.ID {
		return author, fmt.Errorf("you cannot edit other author's profile")
	}

	err := database.C.Save(&author).Error
	return author, err
}
