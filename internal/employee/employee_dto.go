package employee

type EmployeeOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
