package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

func CreateMenu(menu *models.Menu) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO menus (name, description, price, image_url, allergens, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		menu.Name, menu.Description, menu.Price, menu.ImageURL, menu.Allergens, menu.IsActive).Scan(&id)
	return id, err
}

func GetMenuByID(id uuid.UUID) (*models.Menu, error) {
	var menu models.Menu
	err := database.Bento.Get(&menu, `
		SELECT id, name, description, price, image_url, allergens, is_active
		FROM menus
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func ListMenus() ([]models.Menu, error) {
	menus := make([]models.Menu, 0)
	err := database.Bento.Select(&menus, `
		SELECT id, name, description, price, image_url, allergens, is_active
		FROM menus
		ORDER BY name`)
	return menus, err
}

func UpdateMenu(id uuid.UUID, menu *models.Menu) error {
	result, err := database.Bento.Exec(`
		UPDATE menus
		SET name = $1, description = $2, price = $3, image_url = $4, allergens = $5, is_active = $6
		WHERE id = $7`,
		menu.Name, menu.Description, menu.Price, menu.ImageURL, menu.Allergens, menu.IsActive, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func UpdateMenuFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("menus", id, fields)
}

func DeleteMenu(id uuid.UUID) error {
	return deleteByID("menus", id)
}
