package domain

// Course is one entry of the static training catalog shown on the site and
// served from the public API.
type Course struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
}

// CourseUsecase defines the interface for course catalog operations
type CourseUsecase interface {
	ListCourses() []Course
}
