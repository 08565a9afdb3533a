package constants

const (
	ERROR_INPUT              = "Dữ liệu đầu vào không hợp lệ"
	DATA_INPUT_IS_NOT_NUMBER = "Dữ liệu đầu vào phải là số"
	INTERNAL_ERROR           = "Lỗi hệ thống, vui lòng thử lại sau"
	UNAUTHORIZED             = "Vui lòng đăng nhập"
)

// Lý do suất chiếu không khả dụng khi đặt vé
const (
	REASON_CANCELLED          = "CANCELLED"
	REASON_SOLD_OUT           = "SOLD_OUT"
	REASON_ENDED              = "ENDED"
	REASON_ALREADY_STARTED    = "ALREADY_STARTED"
	REASON_TOO_CLOSE_TO_START = "TOO_CLOSE_TO_START"
)
