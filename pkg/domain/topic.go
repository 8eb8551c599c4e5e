package domain

// Topic is a single entry of the static topic catalog
type Topic struct {
	ID       string
	Name     string
	Category string
	TopPick  bool // curated shortlist shown expanded by default
}
