package model

type Page[T any] struct {
	List     []T `json:"list"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.Total <= 0 {
		return 1
	}

	return (p.Total + p.PageSize - 1) / p.PageSize
}
