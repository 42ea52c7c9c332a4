package request

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Order       int     `json:"order"`
}

type PrefillRequest struct {
	CompanyName string `json:"companyName"`
	FullName    string `json:"fullName"`
}
