package biblio

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

type openBDItem struct {
	Summary struct {
		ISBN      string `json:"isbn"`
		Title     string `json:"title"`
		Publisher string `json:"publisher"`
		PubDate   string `json:"pubdate"`
		Author    string `json:"author"`
	} `json:"summary"`
	Onix struct {
		DescriptiveDetail struct {
			TitleDetail struct {
				TitleElement struct {
					TitleText struct {
						CollationKey string `json:"collationkey"`
					} `json:"TitleText"`
				} `json:"TitleElement"`
			} `json:"TitleDetail"`
		} `json:"DescriptiveDetail"`
	} `json:"onix"`
}

// OpenBD queries the openBD API. Unknown ISBNs come back as null entries
// and are dropped.
type OpenBD struct {
	baseURL string
	client  *http.Client
}

func NewOpenBD(baseURL string, client *http.Client) *OpenBD {
	return &OpenBD{baseURL: baseURL, client: client}
}

func (p *OpenBD) Name() string { return "openbd" }

func (p *OpenBD) Search(ctx context.Context, isbn string) ([]models.BibRecord, error) {
	var items []*openBDItem
	if err := getJSON(ctx, p.client, p.baseURL+"?isbn="+url.QueryEscape(isbn), &items); err != nil {
		return nil, err
	}

	var out []models.BibRecord
	for _, it := range items {
		if it == nil {
			continue
		}
		out = append(out, models.BibRecord{
			ISBN:          it.Summary.ISBN,
			Title:         it.Summary.Title,
			TitleKana:     it.Onix.DescriptiveDetail.TitleDetail.TitleElement.TitleText.CollationKey,
			Author:        it.Summary.Author,
			PublisherName: it.Summary.Publisher,
			SalesDate:     it.Summary.PubDate,
		})
	}
	return out, nil
}
