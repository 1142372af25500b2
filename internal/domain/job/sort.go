package job

// PageSize is the fixed number of listings per result page.
const PageSize = 12

type SortKey string

const (
	SortDateDesc  SortKey = "date_desc"
	SortDateAsc   SortKey = "date_asc"
	SortCompanyAZ SortKey = "company_az"
	SortTitleAZ   SortKey = "title_az"
)

// DefaultSort orders listings newest-first.
const DefaultSort = SortDateDesc

// ParseSortKey maps a raw sort value to a SortKey. Unrecognized values fall
// back to DefaultSort rather than failing the read.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDateDesc, SortDateAsc, SortCompanyAZ, SortTitleAZ:
		return SortKey(s)
	default:
		return DefaultSort
	}
}
