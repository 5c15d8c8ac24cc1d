package models

// DefaultGrade is assigned when a student is created without a grade
const DefaultGrade = "N/A"

// Student defines a student record
type Student struct {
	ID     int64  `json:"id" example:"1"`                     // Unique identifier, assigned by the store
	Name   string `json:"name" example:"John Doe"`            // Student's full name
	Email  string `json:"email" example:"john@example.com"`   // Unique across all students
	Course string `json:"course" example:"Computer Science"`  // Enrolled course
	Grade  string `json:"grade" example:"A"`                  // Letter grade, "N/A" when not graded yet
}
