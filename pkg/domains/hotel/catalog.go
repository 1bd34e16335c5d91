package hotel

// Listing is one room card on the browsing page.
type Listing struct {
	Image    string `json:"image"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Price    string `json:"price"`
	Type     string `json:"type"`
}

// The site's inventory is a fixed set of serviced-apartment listings.
var defaultListings = []Listing{
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/1595/1590412234-Delhi.ecbc6ca7.jpg", Name: "Premier Room- Room Only", Location: "Delhi", Price: "Rs 4,371.00", Type: "Premium"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/443/1590412182-Gurugram.4ef16f08.jpg", Name: "Standard Room - Room Only", Location: "Delhi", Price: "Rs 4,600.00", Type: "Standard"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/1595/1590412234-Delhi.ecbc6ca7.jpg", Name: "Standard Room - Room Only", Location: "Delhi", Price: "Rs 3,889.00", Type: "Standard"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/1429/1590412376-Noida.84df911a.jpg", Name: "Premier Room- Room Only", Location: "Gurgaon", Price: "Rs 2,354.00", Type: "Premium"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/3698/1660673650-HYD Home.jpg", Name: "Premier Room- Room Only", Location: "Gurgaon", Price: "Rs 1,37.00", Type: "Premium"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/1595/1590412234-Delhi.ecbc6ca7.jpg", Name: "Standard Room - Room Only", Location: "Delhi", Price: "Rs 4,578.00", Type: "Standard"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/1429/1590412376-Noida.84df911a.jpg", Name: "Premier Room- Room Only", Location: "Gurgaon", Price: "Rs 4,371.00", Type: "Premium"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/3698/1660673650-HYD Home.jpg", Name: "Premier Room- Room Only View", Location: "Delhi", Price: "Rs 3,351.00", Type: "Premium"},
	{Image: "https://api.oliveservicedapartments.com/property_assets/city_images/443/1590412182-Gurugram.4ef16f08.jpg", Name: "Standard Room - Room Only", Location: "Delhi", Price: "Rs 3,451.00", Type: "Standard"},
}

type Catalog struct {
	listings []Listing
}

func NewCatalog() *Catalog {
	return &Catalog{listings: defaultListings}
}

func (c *Catalog) All() []Listing {
	return c.Filter("", "")
}

// Filter returns the listings matching the optional city and room-type
// filters. An empty filter matches everything; a linear scan is plenty at
// this inventory size.
func (c *Catalog) Filter(city, roomType string) []Listing {
	matched := make([]Listing, 0, len(c.listings))
	for _, l := range c.listings {
		if city != "" && l.Location != city {
			continue
		}
		if roomType != "" && l.Type != roomType {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}
