package web

import (
	"net/http"

	"go-rotech-website/internal/domain"

	"github.com/gin-gonic/gin"
)

type navLink struct {
	Name string
	Href string
}

type stat struct {
	Number string
	Label  string
}

type serviceOption struct {
	Key   string
	Label string
}

// pageData feeds the index template. Everything except the course list is
// fixed copy carried over from the production site.
type pageData struct {
	Title        string
	Description  string
	CanonicalURL string
	Nav          []navLink
	Stats        []stat
	Courses      []domain.Course
	Services     []serviceOption
}

type SiteHandler struct {
	courseUC domain.CourseUsecase
	baseURL  string
}

// RegisterRoutes mounts the server-rendered marketing page and its assets.
func RegisterRoutes(r *gin.Engine, courseUC domain.CourseUsecase, baseURL string) {
	handler := &SiteHandler{courseUC: courseUC, baseURL: baseURL}

	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")
	r.GET("/", handler.Index)
}

func (h *SiteHandler) Index(c *gin.Context) {
	services := make([]serviceOption, 0)
	for _, key := range domain.ServiceKeys() {
		services = append(services, serviceOption{Key: key, Label: domain.ServiceLabel(key)})
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Title:        "Rotech Data Consult - Monitor. Analyze. Thrive.",
		Description:  "Premier data analysis training, consulting services, and business intelligence solutions across Africa",
		CanonicalURL: h.baseURL,
		Nav: []navLink{
			{Name: "Courses", Href: "#courses"},
			{Name: "Services", Href: "#services"},
			{Name: "Book Session", Href: "#booking"},
			{Name: "Contact", Href: "#contact"},
		},
		Stats: []stat{
			{Number: "500+", Label: "Students Trained"},
			{Number: "50+", Label: "Businesses Served"},
			{Number: "4", Label: "Featured Courses"},
			{Number: "24h", Label: "Consultation Response"},
		},
		Courses:  h.courseUC.ListCourses(),
		Services: services,
	})
}
