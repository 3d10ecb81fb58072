package cruiseledger

import (
	"regexp"
	"strings"
)

// Department is the fine-grained onboard spend classification.
type Department string

const (
	DeptCasino      Department = "Casino"
	DeptBeverage    Department = "Beverage"
	DeptDining      Department = "Dining"
	DeptPhoto       Department = "Photo"
	DeptSpa         Department = "Spa"
	DeptRetail      Department = "Retail"
	DeptShoreEx     Department = "ShoreEx"
	DeptServiceFees Department = "ServiceFees"
	DeptTaxes       Department = "Taxes"
	DeptGratuities  Department = "Gratuities"
	DeptOther       Department = "Other"
)

// Category is the coarse reporting classification.
type Category string

const (
	CatCasino   Category = "Casino"
	CatFood     Category = "Food & Beverage"
	CatSpa      Category = "Spa"
	CatRetail   Category = "Retail"
	CatShoreEx  Category = "ShoreEx"
	CatGratuity Category = "Gratuity"
	CatTaxFees  Category = "Tax/Fees"
	CatOther    Category = "Other"
)

// The free-text tables below are ordered; first match wins.

var departmentTable = []struct {
	pattern *regexp.Regexp
	dept    Department
}{
	{regexp.MustCompile(`(?i)casino|gaming|club royale`), DeptCasino},
	{regexp.MustCompile(`(?i)beverage|\bbar\b|cafe|starbucks|coconut`), DeptBeverage},
	{regexp.MustCompile(`(?i)dining|restaurant|izumi|hooked|chef`), DeptDining},
	{regexp.MustCompile(`(?i)photo`), DeptPhoto},
	{regexp.MustCompile(`(?i)spa|salon|vitality`), DeptSpa},
	{regexp.MustCompile(`(?i)retail|shop|solera|duty`), DeptRetail},
	{regexp.MustCompile(`(?i)shore\s*ex|excursion`), DeptShoreEx},
	{regexp.MustCompile(`(?i)service\s*fee|wow.?band`), DeptServiceFees},
	{regexp.MustCompile(`(?i)tax`), DeptTaxes},
	{regexp.MustCompile(`(?i)gratu`), DeptGratuities},
}

var categoryTable = []struct {
	pattern *regexp.Regexp
	cat     Category
}{
	{regexp.MustCompile(`(?i)casino`), CatCasino},
	{regexp.MustCompile(`(?i)food|dining|beverage`), CatFood},
	{regexp.MustCompile(`(?i)spa`), CatSpa},
	{regexp.MustCompile(`(?i)retail|shop|duty|photo`), CatRetail},
	{regexp.MustCompile(`(?i)shore\s*ex`), CatShoreEx},
	{regexp.MustCompile(`(?i)gratu`), CatGratuity},
	{regexp.MustCompile(`(?i)tax|fee`), CatTaxFees},
}

// fixedCategories maps an already-normalized category label to its canonical
// (category, department) pair, used when ingesting rows that carry a category
// column instead of free text.
var fixedCategories = map[string]struct {
	cat  Category
	dept Department
}{
	"tax/fees":        {CatTaxFees, DeptTaxes},
	"casino":          {CatCasino, DeptCasino},
	"beverage":        {CatFood, DeptBeverage},
	"dining":          {CatFood, DeptDining},
	"food & beverage": {CatFood, DeptDining},
	"gratuity":        {CatGratuity, DeptGratuities},
	"spa":             {CatSpa, DeptSpa},
	"retail":          {CatRetail, DeptRetail},
	"shoreex":         {CatShoreEx, DeptShoreEx},
}

// NormalizeDepartment maps free text to a Department, defaulting to Other.
func NormalizeDepartment(s string) Department {
	for _, e := range departmentTable {
		if e.pattern.MatchString(s) {
			return e.dept
		}
	}
	return DeptOther
}

// NormalizeCategory maps free text to a Category, defaulting to Other.
func NormalizeCategory(s string) Category {
	for _, e := range categoryTable {
		if e.pattern.MatchString(s) {
			return e.cat
		}
	}
	return CatOther
}

// LookupCategory resolves a category label to its canonical pair. Unknown
// labels fall through to free-text normalization.
func LookupCategory(label string) (Category, Department) {
	if e, ok := fixedCategories[strings.ToLower(strings.TrimSpace(label))]; ok {
		return e.cat, e.dept
	}
	return NormalizeCategory(label), NormalizeDepartment(label)
}

var paymentTable = []struct {
	pattern *regexp.Regexp
	method  string
}{
	{regexp.MustCompile(`(?i)sea\s*pass`), "SeaPass"},
	{regexp.MustCompile(`(?i)onboard\s*credit|\bobc\b`), "OnboardCredit"},
	{regexp.MustCompile(`(?i)visa|master|amex|credit`), "CreditCard"},
	{regexp.MustCompile(`(?i)promo|comp`), "Promo"},
}

// NormalizePaymentMethod maps free text to a canonical payment method,
// keeping unrecognized values as-is.
func NormalizePaymentMethod(s string) string {
	for _, e := range paymentTable {
		if e.pattern.MatchString(s) {
			return e.method
		}
	}
	return strings.TrimSpace(s)
}

var refPattern = regexp.MustCompile(`(?i)\b(?:ref|folio)\b\s*#?\s*[:\-]?\s*([A-Za-z0-9\-]+)`)

// ExtractRef pulls a ref/folio number out of free text, or "".
func ExtractRef(s string) string {
	m := refPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
