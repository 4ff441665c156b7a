package v1

import (
	"net/http"

	"go-rotech-website/internal/delivery/http/response"
	"go-rotech-website/internal/domain"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseUC domain.CourseUsecase
}

// NewCourseHandler registers the course catalog routes (public)
func NewCourseHandler(public *gin.RouterGroup, courseUC domain.CourseUsecase) {
	handler := &CourseHandler{courseUC: courseUC}

	public.GET("/courses", handler.List)
}

// List godoc
// @Summary      List featured courses
// @Description  Returns the static training catalog shown on the site.
// @Tags         courses
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Course}
// @Router       /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Course catalog", h.courseUC.ListCourses())
}
