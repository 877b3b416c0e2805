package model

// Page is the envelope returned by the /paged endpoints.
type Page struct {
	Content       interface{} `json:"content"`
	Number        int         `json:"number"`
	Size          int         `json:"size"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int         `json:"totalPages"`
}

func NewPage(content interface{}, number, size int, total int64) *Page {
	pages := int(total / int64(size))
	if total%int64(size) != 0 {
		pages++
	}
	return &Page{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
