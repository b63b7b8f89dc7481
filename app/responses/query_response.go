package responses

// CompileQueryResponse response biên dịch truy vấn
type CompileQueryResponse struct {
	RequestID        string      `json:"request_id"`         // ID của request
	Language         string      `json:"language"`           // Ngôn ngữ đã dùng
	Lenient          bool        `json:"lenient"`            // Chế độ lenient
	Query            interface{} `json:"query"`              // Truy vấn DSL
	ProcessingTimeMs int64       `json:"processing_time_ms"` // Thời gian xử lý (ms)
}

// ErrorResponse response lỗi
type ErrorResponse struct {
	Error   string `json:"error"`   // Mã lỗi
	Message string `json:"message"` // Thông báo lỗi
}

// HealthResponse response health check
type HealthResponse struct {
	Status    string   `json:"status"`
	Languages []string `json:"languages"`
}
