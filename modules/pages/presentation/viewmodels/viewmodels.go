package viewmodels

type Page struct {
	ID          string
	Title       string
	Slug        string
	PageType    string
	IsPublished bool
	URL         string
}

type Pager struct {
	PreviousURL string
	NextURL     string
	TotalCount  int
}
