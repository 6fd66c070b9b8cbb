package inquiry

// Field is one input in a product's dynamic inquiry form.
type Field struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Product is one entry of the public insurance catalog.
type Product struct {
	Tag    string  `json:"tag"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Product tags.
const (
	TagCarPrivate      = "car-private"
	TagCarCommercial   = "car-commercial"
	TagTwoWheeler      = "two-wheeler"
	TagTruckCommercial = "truck-commercial"
	TagHealth          = "health"
	TagLife            = "life"
)

func commonFields() []Field {
	return []Field{
		{Key: "name", Label: "Full Name", Type: "text", Required: true, Placeholder: "Enter your full name"},
		{Key: "phone", Label: "Phone Number", Type: "tel", Required: true, Placeholder: "10-digit mobile number"},
		{Key: "email", Label: "Email (optional)", Type: "email", Required: false, Placeholder: "you@example.com"},
	}
}

func carFields() []Field {
	return append(commonFields(),
		Field{Key: "regNo", Label: "Vehicle Registration No.", Type: "text", Required: true},
		Field{Key: "make", Label: "Make (Brand)", Type: "text", Required: true},
		Field{Key: "model", Label: "Model", Type: "text", Required: true},
		Field{Key: "year", Label: "Manufacture Year", Type: "number", Required: true},
		Field{Key: "fuel", Label: "Fuel Type", Type: "text", Required: true},
		Field{Key: "prevClaims", Label: "Number of Previous Claims", Type: "number", Required: false},
		Field{Key: "insuranceExpiry", Label: "Existing Policy Expiry (YYYY-MM-DD)", Type: "text", Required: false},
		Field{Key: "city", Label: "City", Type: "text", Required: true},
		Field{Key: "pin", Label: "Pincode", Type: "text", Required: true, Placeholder: "6-digit pincode"},
		Field{Key: "additional", Label: "Additional Details", Type: "textarea", Required: false},
	)
}

func twoWheelerFields() []Field {
	return append(commonFields(),
		Field{Key: "regNo", Label: "Vehicle Reg. No.", Type: "text", Required: true},
		Field{Key: "engine", Label: "Engine CC", Type: "number", Required: true},
		Field{Key: "year", Label: "Year", Type: "number", Required: true},
		Field{Key: "prevClaims", Label: "Previous Claims", Type: "number", Required: false},
		Field{Key: "city", Label: "City", Type: "text", Required: true},
		Field{Key: "pin", Label: "Pincode", Type: "text", Required: true},
		Field{Key: "additional", Label: "Additional Details", Type: "textarea", Required: false},
	)
}

func truckFields() []Field {
	return append(commonFields(),
		Field{Key: "vehicleType", Label: "Truck Type", Type: "text", Required: true},
		Field{Key: "regNo", Label: "Reg. No.", Type: "text", Required: true},
		Field{Key: "goodsValue", Label: "Approx. Goods Value (₹)", Type: "number", Required: true},
		Field{Key: "loadCapacity", Label: "Load Capacity (tons)", Type: "number", Required: true},
		Field{Key: "prevClaims", Label: "Previous Claims", Type: "number", Required: false},
		Field{Key: "city", Label: "Operating City", Type: "text", Required: true},
		Field{Key: "pin", Label: "Pincode", Type: "text", Required: true},
		Field{Key: "additional", Label: "Additional Details", Type: "textarea", Required: false},
	)
}

func healthFields() []Field {
	return append(commonFields(),
		Field{Key: "age", Label: "Your Age", Type: "number", Required: true},
		Field{Key: "sumInsured", Label: "Desired Sum Insured (₹)", Type: "number", Required: true},
		Field{Key: "familyMembers", Label: "Cover (Self / Family)", Type: "text", Required: true},
		Field{Key: "preExisting", Label: "Pre-existing Conditions (if any)", Type: "text", Required: false},
		Field{Key: "smoker", Label: "Smoker?", Type: "text", Required: true},
		Field{Key: "additional", Label: "Additional Details", Type: "textarea", Required: false},
	)
}

func lifeFields() []Field {
	return append(commonFields(),
		Field{Key: "age", Label: "Age", Type: "number", Required: true},
		Field{Key: "sumInsured", Label: "Desired Sum Insured (₹)", Type: "number", Required: true},
		Field{Key: "term", Label: "Policy Term (years)", Type: "number", Required: true},
		Field{Key: "smoker", Label: "Smoker?", Type: "text", Required: true},
		Field{Key: "healthCond", Label: "Health Conditions (optional)", Type: "text", Required: false},
		Field{Key: "additional", Label: "Additional Details", Type: "textarea", Required: false},
	)
}

// Catalog returns the fixed list of insurance products offered on the
// public site, each with its dynamic inquiry field set.
func Catalog() []Product {
	return []Product{
		{Tag: TagCarPrivate, Name: "Private Car Insurance", Fields: carFields()},
		{Tag: TagCarCommercial, Name: "Commercial Car Insurance", Fields: carFields()},
		{Tag: TagTwoWheeler, Name: "Two Wheeler Insurance", Fields: twoWheelerFields()},
		{Tag: TagTruckCommercial, Name: "Commercial Truck Insurance", Fields: truckFields()},
		{Tag: TagHealth, Name: "Health Insurance", Fields: healthFields()},
		{Tag: TagLife, Name: "Life Insurance", Fields: lifeFields()},
	}
}

// ProductByTag looks up a catalog entry by its tag.
func ProductByTag(tag string) (Product, bool) {
	for _, p := range Catalog() {
		if p.Tag == tag {
			return p, true
		}
	}
	return Product{}, false
}
