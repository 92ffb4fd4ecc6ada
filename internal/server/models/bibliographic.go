package models

// BibRecord is the normalized result of a bibliographic lookup.
type BibRecord struct {
	ISBN          string `json:"isbn"`
	Title         string `json:"title"`
	TitleKana     string `json:"titleKana"`
	Author        string `json:"author"`
	PublisherName string `json:"publisherName"`
	SalesDate     string `json:"salesDate"`
}
