package dto

import "encoding/json"

// Page is the pagination envelope the core API answers list endpoints with.
// Data stays raw so each domain can decode it into its own model slice.
type Page struct {
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
	Data        json.RawMessage `json:"data"`
}

func (p *Page) HasPrev() bool {
	return p.CurrentPage > 1
}

func (p *Page) HasNext() bool {
	return p.CurrentPage < p.LastPage
}

// PageMeta is the pagination block the gateway exposes to its own clients.
type PageMeta struct {
	CurrentPage int  `json:"current_page"`
	LastPage    int  `json:"last_page"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

func (m *PageMeta) FromPage(page Page) {
	m.CurrentPage = page.CurrentPage
	m.LastPage = page.LastPage
	m.HasPrev = page.HasPrev()
	m.HasNext = page.HasNext()
}
