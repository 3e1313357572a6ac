package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

func CreateAccount(username string, email *string, hashedPassword string) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO accounts (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`,
		username, email, hashedPassword).Scan(&id)
	return id, err
}

func GetAccountByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	err := database.Bento.Get(&account, `
		SELECT id, username, email, password, created_at
		FROM accounts
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func ListAccounts() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := database.Bento.Select(&accounts, `
		SELECT id, username, email, password, created_at
		FROM accounts
		ORDER BY username`)
	return accounts, err
}

func DeleteAccount(id uuid.UUID) error {
	return deleteByID("accounts", id)
}

func IsUsernameTaken(username string) (bool, error) {
	var exists bool
	err := database.Bento.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM accounts WHERE LOWER(username) = LOWER($1))`, username).Scan(&exists)
	return exists, err
}

func AccountExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Bento.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func CreateCustomerUser(user *models.CustomerUser) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO customer_users (account_id, company_id)
		VALUES ($1, $2)
		RETURNING id`,
		user.AccountID, user.CompanyID).Scan(&id)
	return id, err
}

func GetCustomerUserByID(id uuid.UUID) (*models.CustomerUser, error) {
	var user models.CustomerUser
	err := database.Bento.Get(&user, `
		SELECT id, account_id, company_id
		FROM customer_users
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func ListCustomerUsers() ([]models.CustomerUser, error) {
	users := make([]models.CustomerUser, 0)
	err := database.Bento.Select(&users, `
		SELECT id, account_id, company_id
		FROM customer_users`)
	return users, err
}

func UpdateCustomerUser(id uuid.UUID, user *models.CustomerUser) error {
	result, err := database.Bento.Exec(`
		UPDATE customer_users
		SET account_id = $1, company_id = $2
		WHERE id = $3`,
		user.AccountID, user.CompanyID, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func UpdateCustomerUserFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("customer_users", id, fields)
}

func DeleteCustomerUser(id uuid.UUID) error {
	return deleteByID("customer_users", id)
}

func CustomerUserExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Bento.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM customer_users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
