package pexels

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/provider"
)

// Raw API response types (internal).

type searchResponse struct {
	Page         int        `json:"page"`
	PerPage      int        `json:"per_page"`
	TotalResults int        `json:"total_results"`
	Photos       []rawPhoto `json:"photos"`
}

type rawPhoto struct {
	ID              int     `json:"id"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	URL             string  `json:"url"`
	Photographer    string  `json:"photographer"`
	PhotographerURL string  `json:"photographer_url"`
	AvgColor        string  `json:"avg_color"`
	Alt             string  `json:"alt"`
	Src             rawSrcs `json:"src"`
}

type rawSrcs struct {
	Original string `json:"original"`
	Large2x  string `json:"large2x"`
	Large    string `json:"large"`
	Medium   string `json:"medium"`
	Small    string `json:"small"`
}

// Search returns one page of photo metadata for the query.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) ([]domain.ImageRecord, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")

	body, err := c.doRequest(ctx, "/search", params)
	if err != nil {
		return nil, provider.WrapError("search", domain.SourcePexels, query, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, provider.WrapError("search", domain.SourcePexels, query,
			fmt.Errorf("parse response: %w", err))
	}

	records := make([]domain.ImageRecord, 0, len(resp.Photos))
	for i := range resp.Photos {
		records = append(records, toRecord(&resp.Photos[i]))
	}
	return records, nil
}

// toRecord normalizes a raw photo into an ImageRecord. Category is left
// empty; the acquisition engine stamps it.
func toRecord(p *rawPhoto) domain.ImageRecord {
	var tags []string
	if alt := strings.TrimSpace(strings.ToLower(p.Alt)); alt != "" {
		tags = append(tags, alt)
	}

	imageURL := p.Src.Large2x
	if imageURL == "" {
		imageURL = p.Src.Original
	}

	return domain.ImageRecord{
		ID:            strconv.Itoa(p.ID),
		URL:           imageURL,
		ThumbnailURL:  p.Src.Medium,
		Tags:          tags,
		Width:         p.Width,
		Height:        p.Height,
		DominantColor: p.AvgColor,
		Source:        domain.SourcePexels,
		Attribution: domain.Attribution{
			PhotographerName: p.Photographer,
			PhotographerURL:  p.PhotographerURL,
			License:          licenseText,
		},
	}
}
