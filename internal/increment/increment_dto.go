package increment

type ReportQuery struct {
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"pageSize,default=10"`
	SortBy    string `form:"sortBy,default=name"`
	SortOrder string `form:"sortOrder,default=ASC"`
}

type ReportRow struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	JoinedAt             string  `json:"joined_at"`
	DaysOfService        int     `json:"days_of_service"`
	AverageRating        *string `json:"average_rating"`
	IsEligible           bool    `json:"is_eligible"`
	IncrementPercentage  string  `json:"increment_percentage"`
	CurrentSalary        string  `json:"current_salary"`
	NewSalary            string  `json:"new_salary"`
	SalaryStructureError *string `json:"salary_structure_error"`
}

type ReportResponse struct {
	Data       []ReportRow `json:"data"`
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
}

type SchemeRowResponse struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	Percentage string `json:"percentage"`
}
