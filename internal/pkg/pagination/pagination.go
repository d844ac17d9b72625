// Package pagination implements page/per_page offset paging for list
// endpoints.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
}

// NewParams fills in defaults for missing values and caps PerPage at
// MaxPerPage.
func NewParams(page, perPage int) Params {
	p := Params{Page: page, PerPage: perPage}
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.PerPage < 1:
		p.PerPage = DefaultPerPage
	case p.PerPage > MaxPerPage:
		p.PerPage = MaxPerPage
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Info describes the page p selects out of totalItems. An empty result
// still has one page.
func (p Params) Info(totalItems int) *Info {
	totalPages := max(1, (totalItems+p.PerPage-1)/p.PerPage)
	return &Info{
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    p.Page < totalPages,
		HasPrev:    p.Page > 1,
	}
}

type Info struct {
	Page       int
	PerPage    int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
