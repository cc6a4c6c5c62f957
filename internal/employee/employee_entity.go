package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNo string    `gorm:"column:employee_no;type:varchar(20);not null;uniqueIndex:uq_employee_no"`
	FullName   string    `gorm:"column:full_name;type:varchar(100);not null"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	HireDate   time.Time `gorm:"column:hire_date;type:date;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
