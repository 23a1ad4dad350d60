package web

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/gridiron/internal/nfl"
)

// The film page is a Next.js app; the play-by-play payload rides along in
// the __NEXT_DATA__ script tag rather than the DOM.
type nextData struct {
	Props struct {
		PageProps struct {
			Plays []nfl.Play `json:"plays"`
		} `json:"pageProps"`
	} `json:"props"`
}

// ExtractPlays pulls the play-by-play records out of a rendered film page.
func ExtractPlays(html string) ([]nfl.Play, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	payload := doc.Find(`script#__NEXT_DATA__`).First().Text()
	if payload == "" {
		return nil, fmt.Errorf("page carries no __NEXT_DATA__ payload")
	}

	var data nextData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decoding play payload: %w", err)
	}

	return data.Props.PageProps.Plays, nil
}

// FetchPlays loads a game's film page and extracts its plays. Satisfies
// the ingester's play source.
func (c *Client) FetchPlays(ctx context.Context, season int, seasonType, week, gameID string) ([]nfl.Play, error) {
	html, err := c.FetchGamePage(ctx, season, seasonType, week, gameID)
	if err != nil {
		return nil, err
	}
	return ExtractPlays(html)
}
