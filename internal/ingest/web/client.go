package web

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// BaseURL for the film pages
	BaseURL = "https://pro.nfl.com"

	// UserAgent for the headless browser
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval between page loads to avoid rate limiting
	MinRequestInterval = 2 * time.Second

	pageTimeout = 30 * time.Second

	loginButtonSelector    = `header button`
	emailFieldSelector     = `#email-input-field`
	continueButtonSelector = `#__next form button[type="submit"]`
	passwordFieldSelector  = `#password-input-field`
	signInButtonSelector   = `#__next form button[type="submit"]`
)

// Client drives a headless browser against the film site. Play-by-play
// pages require an authenticated session, so Login must succeed before
// FetchGamePage.
type Client struct {
	email    string
	password string
	baseURL  string

	mu          sync.Mutex
	lastRequest time.Time

	allocCtx   context.Context
	browserCtx context.Context
	cancel     []context.CancelFunc
	loggedIn   bool
}

// NewClient creates a new film-site scraper client.
func NewClient(email, password string) (*Client, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)

	// A single long-lived browser context keeps the session cookies from
	// login available to every page fetch.
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	return &Client{
		email:      email,
		password:   password,
		baseURL:    BaseURL,
		allocCtx:   allocCtx,
		browserCtx: browserCtx,
		cancel:     []context.CancelFunc{cancelBrowser, cancelAlloc},
	}, nil
}

// Close releases the browser.
func (c *Client) Close() {
	for _, cancel := range c.cancel {
		cancel()
	}
}

// Login walks the email/password form flow. Safe to call repeatedly; a
// live session short-circuits.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loggedIn {
		return nil
	}
	if c.email == "" || c.password == "" {
		return fmt.Errorf("missing credentials")
	}

	runCtx, cancel := context.WithTimeout(c.browserCtx, 2*pageTimeout)
	defer cancel()
	_ = ctx

	err := chromedp.Run(runCtx,
		chromedp.Navigate(c.baseURL+"/film/plays"),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
		chromedp.Click(loginButtonSelector, chromedp.ByQuery),
		chromedp.WaitVisible(emailFieldSelector, chromedp.ByID),
		chromedp.SendKeys(emailFieldSelector, c.email, chromedp.ByID),
		chromedp.Click(continueButtonSelector, chromedp.ByQuery),
		chromedp.WaitVisible(passwordFieldSelector, chromedp.ByID),
		chromedp.SendKeys(passwordFieldSelector, c.password, chromedp.ByID),
		chromedp.Click(signInButtonSelector, chromedp.ByQuery),
		chromedp.Sleep(5*time.Second),
	)
	if err != nil {
		return fmt.Errorf("login flow: %w", err)
	}

	log.Printf("[web] ✓ logged in as %s", c.email)
	c.loggedIn = true
	return nil
}

// FetchGamePage loads a game's film page and returns its rendered HTML.
func (c *Client) FetchGamePage(ctx context.Context, season int, seasonType, week, gameID string) (string, error) {
	if err := c.Login(ctx); err != nil {
		return "", err
	}

	c.rateLimit()

	url := fmt.Sprintf("%s/film/plays?season=%d&seasonType=%s&weekSlug=%s&gameId=%s",
		c.baseURL, season, seasonType, week, gameID)

	runCtx, cancel := context.WithTimeout(c.browserCtx, pageTimeout)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("fetching game page %s: %w", gameID, err)
	}
	if html == "" {
		return "", fmt.Errorf("empty page for game %s", gameID)
	}

	return html, nil
}

func (c *Client) rateLimit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastRequest.IsZero() {
		if elapsed := time.Since(c.lastRequest); elapsed < MinRequestInterval {
			time.Sleep(MinRequestInterval - elapsed)
		}
	}
	c.lastRequest = time.Now()
}
