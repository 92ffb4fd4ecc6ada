package biblio

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/bookshelf/internal/server/models"
)

type rakutenResponse struct {
	Items []struct {
		Item struct {
			Title         string `json:"title"`
			TitleKana     string `json:"titleKana"`
			Author        string `json:"author"`
			PublisherName string `json:"publisherName"`
			SalesDate     string `json:"salesDate"`
			ISBN          string `json:"isbn"`
		} `json:"Item"`
	} `json:"Items"`
}

// Rakuten queries the Rakuten Books total search API by ISBN/JAN.
type Rakuten struct {
	baseURL       string
	applicationID string
	client        *http.Client
}

func NewRakuten(baseURL, applicationID string, client *http.Client) *Rakuten {
	return &Rakuten{baseURL: baseURL, applicationID: applicationID, client: client}
}

func (p *Rakuten) Name() string { return "rakuten" }

func (p *Rakuten) Search(ctx context.Context, isbn string) ([]models.BibRecord, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("isbnjan", isbn)
	q.Set("applicationId", p.applicationID)

	var resp rakutenResponse
	if err := getJSON(ctx, p.client, p.baseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	out := make([]models.BibRecord, 0, len(resp.Items))
	for _, it := range resp.Items {
		out = append(out, models.BibRecord{
			ISBN:          it.Item.ISBN,
			Title:         it.Item.Title,
			TitleKana:     it.Item.TitleKana,
			Author:        it.Item.Author,
			PublisherName: it.Item.PublisherName,
			SalesDate:     it.Item.SalesDate,
		})
	}
	return out, nil
}
