package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

func CreateCompany(company *models.CustomerCompany) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO customer_companies (name, contact_person, email, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		company.Name, company.ContactPerson, company.Email, company.PhoneNumber).Scan(&id)
	return id, err
}

func GetCompanyByID(id uuid.UUID) (*models.CustomerCompany, error) {
	var company models.CustomerCompany
	err := database.Bento.Get(&company, `
		SELECT id, name, contact_person, email, phone_number
		FROM customer_companies
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func ListCompanies() ([]models.CustomerCompany, error) {
	companies := make([]models.CustomerCompany, 0)
	err := database.Bento.Select(&companies, `
		SELECT id, name, contact_person, email, phone_number
		FROM customer_companies
		ORDER BY name`)
	return companies, err
}

func UpdateCompany(id uuid.UUID, company *models.CustomerCompany) error {
	result, err := database.Bento.Exec(`
		UPDATE customer_companies
		SET name = $1, contact_person = $2, email = $3, phone_number = $4
		WHERE id = $5`,
		company.Name, company.ContactPerson, company.Email, company.PhoneNumber, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func UpdateCompanyFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("customer_companies", id, fields)
}

func DeleteCompany(id uuid.UUID) error {
	return deleteByID("customer_companies", id)
}

func CompanyExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Bento.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM customer_companies WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
