package domain

// Program is a finished motion program plus its toolpath count. It is the
// seed-deterministic portion of a carving, which makes it the unit of
// caching: two requests with the same dimensions, seed and step size share
// the same Program even though they produce distinct carvings.
type Program struct {
	Lines         []string `json:"lines"`
	ToolpathCount int      `json:"toolpathCount"`
}
