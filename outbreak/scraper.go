// Package outbreak fetches the weekly disease-outbreak bulletins published
// by the Integrated Disease Surveillance Programme and formats them for
// users.
package outbreak

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"swasthya/domain"
	"swasthya/errors"
)

const (
	DefaultBaseURL = "https://idsp.mohfw.gov.in"
	bulletinsPath  = "/index4.php?lang=1&level=0&linkid=406&lid=3689"

	fetchTimeout = 30 * time.Second
)

// Bulletin links live under WriteReadData and are always PDFs; everything
// else on the page is navigation.
const linkMarker = "WriteReadData"

// weekPatterns is a ladder of increasingly loose week/year shapes observed
// in the bulletin titles. Group order varies; disambiguation is numeric.
var weekPatterns = []*regexp.Regexp{
	regexp.MustCompile(`week\s*(\d+).*?(\d{4})`),
	regexp.MustCompile(`(\d+).*?week.*?(\d{4})`),
	regexp.MustCompile(`w(\d+).*?(\d{4})`),
	regexp.MustCompile(`(\d{4}).*?week\s*(\d+)`),
	regexp.MustCompile(`(\d{4}).*?w(\d+)`),
}

// Scraper extracts dated bulletin links from the surveillance programme's
// weekly outbreaks page.
type Scraper struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

func NewScraper(log *slog.Logger, baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		log:     log,
		client:  &http.Client{Timeout: fetchTimeout},
		baseURL: baseURL,
	}
}

// FetchLinks downloads the weekly outbreaks page and returns the n most
// recent bulletin links, newest first.
func (s *Scraper) FetchLinks(ctx context.Context, n int) ([]domain.BulletinLink, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+bulletinsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building bulletin request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching bulletin page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bulletin page returned status %d", resp.StatusCode)
	}

	links, err := s.parse(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, errors.ErrEmptyBulletin
	}
	if n > 0 && len(links) > n {
		links = links[:n]
	}
	s.log.Info("bulletin links extracted", "count", len(links))
	return links, nil
}

// parse walks every anchor on the page, keeps PDF bulletin links, and sorts
// them newest first by (year, week).
func (s *Scraper) parse(r io.Reader) ([]domain.BulletinLink, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing bulletin page: %w", err)
	}

	var links []domain.BulletinLink
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, linkMarker) || !strings.HasSuffix(href, ".pdf") {
			return
		}
		title := strings.TrimSpace(sel.Text())
		week, year := extractWeekInfo(title)
		links = append(links, domain.BulletinLink{
			Week:     week,
			Year:     year,
			Title:    title,
			URL:      s.absoluteURL(href),
			Filename: filename(href),
		})
	})

	sort.SliceStable(links, func(i, j int) bool {
		if links[i].Year != links[j].Year {
			return links[i].Year > links[j].Year
		}
		return links[i].Week > links[j].Week
	})
	return links, nil
}

func (s *Scraper) absoluteURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return s.baseURL + "/" + strings.TrimPrefix(href, "/")
}

func filename(href string) string {
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}

// extractWeekInfo pulls week and year out of a bulletin title. Titles are
// inconsistent, so each pattern's two captures are disambiguated by range:
// years exceed 1900, week numbers never exceed 53. Titles that defeat every
// pattern get a sentinel of week 1, 2025.
func extractWeekInfo(title string) (week, year int) {
	lower := strings.ToLower(title)
	for _, pattern := range weekPatterns {
		m := pattern.FindStringSubmatch(lower)
		if len(m) != 3 {
			continue
		}
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		switch {
		case a > 1900 && b <= 53:
			return b, a
		case b > 1900 && a <= 53:
			return a, b
		}
	}
	return 1, 2025
}
