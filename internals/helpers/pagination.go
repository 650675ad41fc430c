package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

var (
	DefaultOpts = PageOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PageOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PageParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

// ParsePage membaca page/per_page/sort_by/sort_order dari query string Fiber.
// sort_by dibatasi whitelist kolom oleh pemanggil lewat allowedSort.
func ParsePage(c *fiber.Ctx, defaultSortBy string, allowedSort map[string]bool) PageParams {
	return ParsePageWith(c, defaultSortBy, allowedSort, DefaultOpts)
}

func ParsePageWith(c *fiber.Ctx, defaultSortBy string, allowedSort map[string]bool, opt PageOptions) PageParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := atoiDefault(firstNonEmpty(c.Query("per_page"), c.Query("limit")), opt.DefaultPerPage)
	if per < 1 {
		per = opt.DefaultPerPage
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" || (allowedSort != nil && !allowedSort[sortBy]) {
		sortBy = defaultSortBy
	}

	sortOrder := strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return PageParams{Page: page, PerPage: per, SortBy: sortBy, SortOrder: sortOrder}
}

func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

func (p PageParams) OrderClause() string { return p.SortBy + " " + p.SortOrder }

// Meta paginasi untuk response list
func PageMeta(p PageParams, total int64) fiber.Map {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
