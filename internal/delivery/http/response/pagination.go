package response

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Page is the paginated list payload: total count, absolute next/previous
// page links, and the current page of results.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// NewPage builds the paginated payload for the current request. Links are
// derived from the request URL with only the page parameter rewritten.
func NewPage(c echo.Context, count int64, page, pageSize int, results any) Page {
	p := Page{
		Count:   count,
		Results: results,
	}

	if pageSize <= 0 {
		return p
	}

	lastPage := int((count + int64(pageSize) - 1) / int64(pageSize))
	if page < lastPage {
		p.Next = pageLink(c, page+1)
	}
	if page > 1 && page <= lastPage {
		p.Previous = pageLink(c, page-1)
	}
	return p
}

func pageLink(c echo.Context, page int) *string {
	u := *c.Request().URL
	query := u.Query()
	query.Set("page", strconv.Itoa(page))
	u.RawQuery = query.Encode()

	link := absoluteURL(c, &u)
	return &link
}

func absoluteURL(c echo.Context, u *url.URL) string {
	scheme := c.Scheme()
	host := c.Request().Host
	return scheme + "://" + host + u.RequestURI()
}
