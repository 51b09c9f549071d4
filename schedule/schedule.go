// Package schedule defines the ordered, typed set of fields collected for a
// work permit application. The order of Fields is the default question order
// of the conversational flow.
package schedule

type Kind string

const (
	KindText     Kind = "text"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindTel      Kind = "tel"
	KindEmail    Kind = "email"
	KindNumber   Kind = "number"
	KindTextarea Kind = "textarea"
)

type Field struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"kind"`
	Required bool   `json:"required"`
}

var fields = []Field{
	{ID: "fullName", Kind: KindText, Required: true},
	{ID: "dateOfBirth", Kind: KindDate, Required: true},
	{ID: "nationality", Kind: KindSelect, Required: true},
	{ID: "passportNumber", Kind: KindText, Required: true},
	{ID: "currentAddress", Kind: KindText, Required: true},
	{ID: "phoneNumber", Kind: KindTel, Required: true},
	{ID: "email", Kind: KindEmail, Required: true},
	{ID: "maritalStatus", Kind: KindSelect, Required: true},
	{ID: "germanAddress", Kind: KindText, Required: false},
	{ID: "plannedArrival", Kind: KindDate, Required: true},
	{ID: "employerName", Kind: KindText, Required: true},
	{ID: "employerAddress", Kind: KindText, Required: true},
	{ID: "jobTitle", Kind: KindText, Required: true},
	{ID: "jobDescription", Kind: KindTextarea, Required: true},
	{ID: "contractDuration", Kind: KindText, Required: true},
	{ID: "salary", Kind: KindNumber, Required: true},
	{ID: "workHours", Kind: KindNumber, Required: true},
	{ID: "previousEmployment", Kind: KindTextarea, Required: false},
	{ID: "qualifications", Kind: KindTextarea, Required: true},
	{ID: "germanLevel", Kind: KindSelect, Required: true},
	{ID: "criminalRecord", Kind: KindSelect, Required: true},
	{ID: "healthInsurance", Kind: KindText, Required: true},
	{ID: "accommodation", Kind: KindText, Required: false},
	{ID: "financialSupport", Kind: KindText, Required: true},
}

var index = func() map[string]int {
	m := make(map[string]int, len(fields))
	for i, f := range fields {
		m[f.ID] = i
	}
	return m
}()

// Fields returns the full schedule in question order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func Len() int {
	return len(fields)
}

func At(i int) (Field, bool) {
	if i < 0 || i >= len(fields) {
		return Field{}, false
	}
	return fields[i], true
}

// IndexOf returns the schedule position of a field id, or -1 when unknown.
func IndexOf(id string) int {
	if i, ok := index[id]; ok {
		return i
	}
	return -1
}

func ByID(id string) (Field, bool) {
	i, ok := index[id]
	if !ok {
		return Field{}, false
	}
	return fields[i], true
}

// Domain returns the canonical value domain for a select field, nil for
// every other field.
func Domain(id string) []string {
	switch id {
	case "nationality":
		return []string{"DE", "TR", "SY", "PL", "UA", "IN", "RU", "CN", "US", "ES", "FR", "IT", "PT", "GB", "RO", "BG", "GR", "OTHER"}
	case "maritalStatus":
		return []string{"single", "married", "divorced", "widowed"}
	case "germanLevel":
		return []string{"none", "A1", "A2", "B1", "B2", "C1", "C2"}
	case "criminalRecord":
		return []string{"yes", "no"}
	default:
		return nil
	}
}
