package models

import (
	"time"

	"github.com/google/uuid"
)

type CustomerCompany struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	ContactPerson *string   `db:"contact_person" json:"contact_person"`
	Email         *string   `db:"email" json:"email"`
	PhoneNumber   *string   `db:"phone_number" json:"phone_number"`
}

// Account is the login identity behind a CustomerUser. The password column
// holds a bcrypt hash and never leaves the server.
type Account struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     *string   `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CustomerUser struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AccountID uuid.UUID `db:"account_id" json:"account_id"`
	CompanyID uuid.UUID `db:"company_id" json:"company_id"`
}
