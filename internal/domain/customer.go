package domain

// Customer identity is the numeric id alone; name and age are captured
// on first purchase. Invoices is a convenience view over the invoices
// held by the customer's tickets.
type Customer struct {
	ID       int
	Name     string
	Age      int
	Tickets  []*Ticket
	Invoices []*Invoice
}

func NewCustomer(id int, name string, age int) *Customer {
	return &Customer{
		ID:   id,
		Name: name,
		Age:  age,
	}
}

// TotalSpend sums ticket totals and every restaurant invoice total.
func (c *Customer) TotalSpend() float64 {
	total := 0.0
	for _, t := range c.Tickets {
		total += t.TotalSpend()
	}
	return total
}
