package dto

// CreateStudentRequest represents the body of a student creation request.
// Grade is optional and defaults to "N/A".
type CreateStudentRequest struct {
	Name   string `json:"name" example:"John Doe"`
	Email  string `json:"email" example:"john@example.com"`
	Course string `json:"course" example:"Computer Science"`
	Grade  string `json:"grade" example:"A"`
}

// ReplaceStudentRequest represents a full update. All four fields are required.
type ReplaceStudentRequest struct {
	Name   string `json:"name" example:"John Doe"`
	Email  string `json:"email" example:"john@example.com"`
	Course string `json:"course" example:"Computer Science"`
	Grade  string `json:"grade" example:"A"`
}

// PatchStudentRequest represents a partial update. Absent fields stay nil and
// are left untouched; any id in the body is ignored.
type PatchStudentRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Course *string `json:"course"`
	Grade  *string `json:"grade"`
}

// StudentSearchFilter holds the query parameters of a student search.
// Name and Course match as case-insensitive substrings, Grade matches
// case-insensitively but exact.
type StudentSearchFilter struct {
	Name   string `form:"name"`
	Course string `form:"course"`
	Grade  string `form:"grade"`
}
