package types

type UserResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	Profession string `json:"profession,omitempty"`
}

type CompanyResponse struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Sector      string `json:"sector,omitempty"`
	Website     string `json:"website,omitempty"`
	Size        string `json:"size,omitempty"`
}
