package models

// 연락처 폼 제출 한 건 (SubmissionRecord)
// name/email/phone 은 필수, message 는 빈 문자열 허용
type Submission struct {
	Name    string `json:"name" form:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" form:"email" binding:"required" example:"jane@example.com"`
	Phone   string `json:"phone" form:"phone" binding:"required" example:"+1-555-0100"`
	Message string `json:"message" form:"message" example:"Hello"`
}

// Row returns the spreadsheet row in its fixed column order.
func (s Submission) Row() []interface{} {
	return []interface{}{s.Name, s.Email, s.Phone, s.Message}
}
