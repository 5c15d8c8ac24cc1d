package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studenthub/internal/app/models/dto"
	"github.com/yigit/studenthub/internal/app/services"
	"github.com/yigit/studenthub/internal/middleware"
)

// StudentController handles student record endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseID parses the :id path parameter. A non-numeric id can never match a
// record, so it gets the same not-found response as an unknown numeric id.
func (c *StudentController) parseID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(fmt.Sprintf("Student with id %s not found", idStr)))
		return 0, false
	}
	return id, true
}

// GetAllStudents lists every student
// @Summary Get all students
// @Tags students
// @Produce json
// @Success 200 {object} dto.Response{data=[]models.Student}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// GetStudentByID retrieves a single student
// @Summary Get a student by id
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response{data=models.Student}
// @Failure 404 {object} dto.Response
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(student))
}

// SearchStudents filters students by name, course and grade query parameters
// @Summary Search students
// @Tags students
// @Produce json
// @Param name query string false "Substring match on name, case-insensitive"
// @Param course query string false "Substring match on course, case-insensitive"
// @Param grade query string false "Exact match on grade, case-insensitive"
// @Success 200 {object} dto.Response{data=[]models.Student}
// @Router /students/search [get]
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	var filter dto.StudentSearchFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid search parameters"))
		return
	}

	students, err := c.studentService.Search(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(students), students))
}

// CreateStudent creates a new student record
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student fields"
// @Success 201 {object} dto.Response{data=models.Student}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Student created successfully", student))
}

// ReplaceStudent fully replaces a student record
// @Summary Replace a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.ReplaceStudentRequest true "All student fields"
// @Success 200 {object} dto.Response{data=models.Student}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /students/{id} [put]
func (c *StudentController) ReplaceStudent(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.ReplaceStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Replace(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student updated successfully", student))
}

// PatchStudent merges a partial update onto a student record
// @Summary Partially update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.PatchStudentRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=models.Student}
// @Failure 404 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /students/{id} [patch]
func (c *StudentController) PatchStudent(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req dto.PatchStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	student, err := c.studentService.Patch(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student updated successfully", student))
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.Response{data=models.Student}
// @Failure 404 {object} dto.Response
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.Delete(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted successfully", student))
}
