package schemas

// Uniform response envelopes. Every endpoint answers with one of these.

type APIResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type APIListResponse[T any] struct {
	Status string `json:"status"`
	Data   []T    `json:"data"`
	Count  int    `json:"count"`
}

type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type PaginatedResponse[T any] struct {
	Status     string         `json:"status"`
	Data       []T            `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ErrorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

func Success[T any](data T) APIResponse[T] {
	return APIResponse[T]{Status: "success", Data: data}
}

func SuccessList[T any](data []T) APIListResponse[T] {
	return APIListResponse[T]{Status: "success", Data: data, Count: len(data)}
}

func SuccessPage[T any](data []T, page, limit int, total int64) PaginatedResponse[T] {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return PaginatedResponse[T]{
		Status: "success",
		Data:   data,
		Pagination: PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

func Error(code, message string, details map[string]interface{}) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error:  ErrorDetail{Code: code, Message: message, Details: details},
	}
}
