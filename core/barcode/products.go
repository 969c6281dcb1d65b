package barcode

// Product is the classification resolved from a device barcode prefix.
type Product struct {
	Name string `json:"product_name"`
	ID   string `json:"product_id"`
}

// products maps device barcode prefixes to their product classification.
// It is never mutated after package initialisation.
var products = map[string]Product{
	"T1":  {Name: "TC-1116", ID: "16"},
	"T2":  {Name: "TC-1216", ID: "3"},
	"T3":  {Name: "TC-1120", ID: "39"},
	"T4":  {Name: "TC-1120-RD", ID: "40"},
	"T5":  {Name: "TC-1220", ID: "41"},
	"T6":  {Name: "TC-1220-RD", ID: "42"},
	"TQ":  {Name: "PP-1316", ID: "12"},
	"X1":  {Name: "XR-3100", ID: "14"},
	"ERT": {Name: "ERT", ID: ""},
}

// LookupProduct resolves a product prefix. Unknown prefixes return an empty
// Product and false.
func LookupProduct(prefix string) (Product, bool) {
	p, ok := products[prefix]
	return p, ok
}
