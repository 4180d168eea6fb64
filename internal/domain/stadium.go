package domain

// Stadium holds the per-class seat capacities and the restaurants
// operating inside it. Capacity carries exactly two values: the VIP
// row count followed by the general row count.
type Stadium struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"city"`
	Capacity    []int         `json:"capacity"`
	Restaurants []*Restaurant `json:"restaurants"`
}

func (s *Stadium) VIPRows() int {
	if len(s.Capacity) < 1 {
		return 0
	}
	return s.Capacity[0]
}

func (s *Stadium) GeneralRows() int {
	if len(s.Capacity) < 2 {
		return 0
	}
	return s.Capacity[1]
}

// RestaurantByName returns the restaurant with the given name, or nil.
func (s *Stadium) RestaurantByName(name string) *Restaurant {
	for _, r := range s.Restaurants {
		if r.Name == name {
			return r
		}
	}
	return nil
}
