// Package classify maps extracted profile labels onto the fixed output categories.
package classify

import (
	"sort"

	"github.com/ppiankov/identigen/internal/model"
	"golang.org/x/text/cases"
)

// Labels written for the name and address, always under Basic Info
const (
	NameLabel    = "Name"
	AddressLabel = "Address"
)

// table is keyed by case-folded label. A label appears at most once, so a
// field can never land in two categories.
var table = map[string]model.Category{
	"ssn":                  model.CategoryBasic,
	"mother's maiden name": model.CategoryBasic,
	"birthday":             model.CategoryBasic,
	"age":                  model.CategoryBasic,
	"tropical zodiac":      model.CategoryBasic,
	"geo coordinates":      model.CategoryBasic,

	"email address":      model.CategoryOnline,
	"username":           model.CategoryOnline,
	"password":           model.CategoryOnline,
	"website":            model.CategoryOnline,
	"browser user agent": model.CategoryOnline,

	"phone":        model.CategoryPhone,
	"country code": model.CategoryPhone,

	"mastercard":         model.CategoryFinancial,
	"expires":            model.CategoryFinancial,
	"cvc2":               model.CategoryFinancial,
	"western union mtcn": model.CategoryFinancial,
	"moneygram mtcn":     model.CategoryFinancial,

	"height":         model.CategoryPersonal,
	"weight":         model.CategoryPersonal,
	"blood type":     model.CategoryPersonal,
	"favorite color": model.CategoryPersonal,
	"vehicle":        model.CategoryPersonal,

	"company":    model.CategoryWork,
	"occupation": model.CategoryWork,

	"ups tracking number": model.CategoryShipping,
	"guid":                model.CategoryShipping,
	"qr code":             model.CategoryShipping,
}

// Normalize folds a label for table lookup
func Normalize(label string) string {
	return cases.Fold().String(label)
}

// Classify returns the category for label. The second result is false when
// the label is unknown and the field should be dropped.
func Classify(label string) (model.Category, bool) {
	c, ok := table[Normalize(label)]
	return c, ok
}

// Labels returns every known label key, sorted
func Labels() []string {
	labels := make([]string, 0, len(table))
	for label := range table {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Categorize groups a record into a CategorizedRecord. Name and address are
// always placed first under Basic Info; unknown labels are dropped.
func Categorize(record *model.Record) *model.CategorizedRecord {
	out := model.NewCategorizedRecord()
	out.Set(model.CategoryBasic, NameLabel, record.Name)
	out.Set(model.CategoryBasic, AddressLabel, record.Address)

	for _, f := range record.Fields {
		c, ok := Classify(f.Label)
		if !ok {
			continue
		}
		out.Set(c, f.Label, f.Value)
	}

	return out
}
