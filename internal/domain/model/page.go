package model

// PropertyPage is one bounded slice of a property result set. The field
// names mirror what the frontend already consumes: content plus
// total-count metadata, with number holding the 0-indexed page.
type PropertyPage struct {
	Content       []Property `json:"content"`
	TotalElements int        `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

func NewPropertyPage(content []Property, total, page, size int) PropertyPage {
	if content == nil {
		content = []Property{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return PropertyPage{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}
}
