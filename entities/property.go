package entities

// Property is a listing of the brokerage
type Property struct {
	ID          string
	Title       string
	Kind        string
	Status      string
	Address     string
	City        string
	Price       string
	Area        int
	Bedrooms    int
	Bathrooms   int
	Parking     int
	Broker      string
	Description string
	Features    []string
}
