package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Total    int
	Selected bool
	Query    string
}

// TotalItems returns the number of visible cards
func (c *ModelContext) TotalItems() int {
	return c.Total
}

// HasSelection reports whether a card is selected
func (c *ModelContext) HasSelection() bool {
	return c.Selected
}

// FilterQuery returns the active filter
func (c *ModelContext) FilterQuery() string {
	return c.Query
}
