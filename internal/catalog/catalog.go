/**
 * @description
 * This package holds the static forfait catalog. Packages are read-only
 * reference data defined in the client; they are not fetched from the API.
 */

package catalog

// Package types. Selection in the UI is scoped per type.
const (
	TypeCall     = "call"
	TypeInternet = "internet"
)

// Package is one purchasable prepaid bundle.
type Package struct {
	ID          string
	Name        string
	Type        string
	Duration    string
	Price       int64 // smallest whole currency unit
	Data        string
	Description string
}

var packages = []Package{
	{
		ID:          "internet-jour-100mo",
		Name:        "Forfait Jour - 100Mo",
		Type:        TypeInternet,
		Duration:    "24h",
		Price:       100,
		Data:        "100Mo",
		Description: "Valable 24h",
	},
	{
		ID:          "internet-semaine-500mo",
		Name:        "Forfait Semaine - 500Mo",
		Type:        TypeInternet,
		Duration:    "7 jours",
		Price:       500,
		Data:        "500Mo",
		Description: "Valable 7 jours",
	},
	{
		ID:          "internet-mois-2.5go",
		Name:        "Forfait Mois - 2.5Go",
		Type:        TypeInternet,
		Duration:    "30 jours",
		Price:       2000,
		Data:        "2.5Go",
		Description: "Valable 30 jours",
	},
	{
		ID:          "appel-jour-30min",
		Name:        "Forfait Appel Jour - 30min",
		Type:        TypeCall,
		Duration:    "24h",
		Price:       100,
		Description: "Valable 24h",
	},
	{
		ID:          "appel-semaine-120min",
		Name:        "Forfait Appel Semaine - 120min",
		Type:        TypeCall,
		Duration:    "7 jours",
		Price:       500,
		Description: "Valable 7 jours",
	},
	{
		ID:          "appel-mois-500min",
		Name:        "Forfait Appel Mois - 500min",
		Type:        TypeCall,
		Duration:    "30 jours",
		Price:       1500,
		Description: "Valable 30 jours",
	},
}

// All returns every catalog entry in display order.
func All() []Package {
	out := make([]Package, len(packages))
	copy(out, packages)
	return out
}

// ByType returns the catalog entries of the given type, in display order.
func ByType(t string) []Package {
	var out []Package
	for _, p := range packages {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// Find looks up a package by ID.
func Find(id string) (Package, bool) {
	for _, p := range packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}
