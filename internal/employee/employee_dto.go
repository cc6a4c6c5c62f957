package employee

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeNo string `json:"employee_no"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	HireDate   string `json:"hire_date"`
}
