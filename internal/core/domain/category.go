package domain

// Category names one of the finding categories the extraction engine
// can collect. The declaration order below is the stable key order used
// by every export.
type Category string

const (
	CategoryAddresses  Category = "addresses"
	CategoryEmails     Category = "emails"
	CategoryTelephones Category = "telephones"
	CategoryTokens     Category = "tokens"
	CategoryURLs       Category = "urls"
)

// AllCategories returns every category in declaration order.
func AllCategories() []Category {
	return []Category{
		CategoryAddresses,
		CategoryEmails,
		CategoryTelephones,
		CategoryTokens,
		CategoryURLs,
	}
}
