package domain

type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FIFACode string `json:"code"`
	Group    string `json:"group"`
}
