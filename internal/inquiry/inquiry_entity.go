package inquiry

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

// Inquiry is a message from the public contact form. TransactionNo is a
// human-readable reference handed back to the sender.
type Inquiry struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionNo string    `gorm:"column:transaction_no;type:varchar(20);not null;uniqueIndex:uq_inquiry_transaction_no"`
	Name          string    `gorm:"column:name;type:varchar(100);not null"`
	Email         string    `gorm:"column:email;type:varchar(255);not null"`
	Subject       string    `gorm:"column:subject;type:varchar(200);not null"`
	Message       string    `gorm:"column:message;type:text;not null"`
	Status        string    `gorm:"column:status;type:varchar(20);not null;default:'NEW'"`
	CreatedAt     time.Time `gorm:"column:created_at;index"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
