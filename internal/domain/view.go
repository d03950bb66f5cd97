package domain

// CategoryView is the list-screen view model: the first article of the
// filtered sequence displayed with emphasis, the rest in original order.
// An empty filtered sequence yields {nil, empty} and the caller renders
// an explicit empty state.
type CategoryView struct {
	Featured *Article  `json:"featured"`
	Regular  []Article `json:"regular"`
}

// SearchView distinguishes an inert query (nothing typed yet) from a
// genuine no-match result: both carry empty Results.
type SearchView struct {
	Results     []Article `json:"results"`
	QueryActive bool      `json:"queryActive"`
}

// OfflineView lists the bookmarked subset, independent of any active
// category or search filter.
type OfflineView struct {
	Saved []Article `json:"saved"`
}
