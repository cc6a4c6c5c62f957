package inquiry

type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NEW IN_PROGRESS RESOLVED"`
}

type ListInquiriesQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=NEW IN_PROGRESS RESOLVED"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

type InquiryResponse struct {
	ID            string `json:"id"`
	TransactionNo string `json:"transaction_no"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
