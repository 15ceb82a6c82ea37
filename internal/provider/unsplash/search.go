package unsplash

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"net/url"
	"strconv"

	"github.com/loftlist/seedkit/internal/domain"
	"github.com/loftlist/seedkit/internal/media"
	"github.com/loftlist/seedkit/internal/provider"
)

// Search returns one page of photo metadata for the query.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) ([]domain.ImageRecord, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orientation", "landscape")

	body, err := c.doRequest(ctx, "/search/photos", params)
	if err != nil {
		return nil, provider.WrapError("search", domain.SourceUnsplash, query, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, provider.WrapError("search", domain.SourceUnsplash, query,
			fmt.Errorf("parse response: %w", err))
	}

	records := make([]domain.ImageRecord, 0, len(resp.Results))
	for i := range resp.Results {
		records = append(records, c.toRecord(&resp.Results[i]))
	}
	return records, nil
}

// toRecord normalizes a raw photo into an ImageRecord. Category is left
// empty; the acquisition engine stamps it.
func (c *Client) toRecord(p *rawPhoto) domain.ImageRecord {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t.Title != "" {
			tags = append(tags, t.Title)
		}
	}

	color := p.Color
	if color == "" && p.BlurHash != "" {
		derived, err := media.DominantColorFromBlurHash(p.BlurHash)
		if err != nil {
			c.logger.Debug("blurhash color fallback failed", "id", p.ID, "error", err)
		} else {
			color = derived
		}
	}

	return domain.ImageRecord{
		ID:            p.ID,
		URL:           p.URLs.Regular,
		ThumbnailURL:  p.URLs.Small,
		Tags:          tags,
		Width:         p.Width,
		Height:        p.Height,
		DominantColor: color,
		Source:        domain.SourceUnsplash,
		Attribution: domain.Attribution{
			PhotographerName: p.User.Name,
			PhotographerURL:  p.User.Links.HTML,
			License:          licenseText,
		},
	}
}
