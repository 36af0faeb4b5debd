package database

// Visibility selects which rows a query sees with respect to soft deletion.
// Every list/get/search query maps it to a fixed predicate on is_deleted;
// joined tables each get their own alias-qualified predicate.
type Visibility string

const (
	VisibilityActive  Visibility = "active"
	VisibilityDeleted Visibility = "deleted"
	VisibilityAll     Visibility = "all"
)

// where returns the predicate for the given table alias, e.g.
// "s.is_deleted = 0". VisibilityAll matches everything.
func (v Visibility) where(alias string) string {
	switch v {
	case VisibilityDeleted:
		return alias + ".is_deleted = 1"
	case VisibilityAll:
		return "1 = 1"
	default:
		return alias + ".is_deleted = 0"
	}
}
