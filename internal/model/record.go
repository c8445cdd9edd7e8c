package model

// Record is one synthetic identity extracted from a fetched profile page
type Record struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Fields  []LabeledField `json:"fields"`
}

// LabeledField is a label/value pair as it appears in the source document
type LabeledField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Category is one of the fixed output groupings
type Category int

const (
	CategoryBasic Category = iota
	CategoryOnline
	CategoryPhone
	CategoryFinancial
	CategoryPersonal
	CategoryWork
	CategoryShipping

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryBasic:     "Basic Info",
	CategoryOnline:    "Online Info",
	CategoryPhone:     "Phone Info",
	CategoryFinancial: "Financial Info",
	CategoryPersonal:  "Personal Info",
	CategoryWork:      "Work Info",
	CategoryShipping:  "Shipping Info",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the defined categories
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Categories returns all categories in output order
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := CategoryBasic; c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Entry is a single label/value line inside a category
type Entry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section holds the entries of one category in insertion order
type Section struct {
	Category Category `json:"-"`
	Name     string   `json:"category"`
	Entries  []Entry  `json:"entries"`
}

// CategorizedRecord groups a record's fields into the fixed categories.
// Every category is always present, even when it has no entries.
type CategorizedRecord struct {
	sections [categoryCount]Section
}

// NewCategorizedRecord returns a record with all categories empty
func NewCategorizedRecord() *CategorizedRecord {
	r := &CategorizedRecord{}
	for _, c := range Categories() {
		r.sections[c] = Section{Category: c, Name: c.String()}
	}
	return r
}

// Set stores value under label in category c. An existing label keeps its
// position and only has its value replaced.
func (r *CategorizedRecord) Set(c Category, label, value string) {
	if !c.Valid() {
		return
	}
	s := &r.sections[c]
	for i := range s.Entries {
		if s.Entries[i].Label == label {
			s.Entries[i].Value = value
			return
		}
	}
	s.Entries = append(s.Entries, Entry{Label: label, Value: value})
}

// Get returns the value stored under label in category c
func (r *CategorizedRecord) Get(c Category, label string) (string, bool) {
	if !c.Valid() {
		return "", false
	}
	for _, e := range r.sections[c].Entries {
		if e.Label == label {
			return e.Value, true
		}
	}
	return "", false
}

// Entries returns a copy of the entries stored in category c
func (r *CategorizedRecord) Entries(c Category) []Entry {
	if !c.Valid() {
		return nil
	}
	out := make([]Entry, len(r.sections[c].Entries))
	copy(out, r.sections[c].Entries)
	return out
}

// Sections returns all categories in output order
func (r *CategorizedRecord) Sections() []Section {
	out := make([]Section, 0, categoryCount)
	for _, s := range r.sections {
		s.Entries = append([]Entry(nil), s.Entries...)
		out = append(out, s)
	}
	return out
}

// Len returns the total number of entries across all categories
func (r *CategorizedRecord) Len() int {
	n := 0
	for _, s := range r.sections {
		n += len(s.Entries)
	}
	return n
}
