package domain

// Profile is the signed-in user's account data.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"userType"`
	Image     string `json:"image,omitempty"`
}

// Address is a saved delivery address.
type Address struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Street string `json:"street"`
	Phone  string `json:"phone,omitempty"`
}

// BankAccount is a saved payout account for vendor users.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	IBAN          string `json:"iban,omitempty"`
	HolderName    string `json:"holderName"`
}
