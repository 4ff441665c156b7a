package usecase

import "go-rotech-website/internal/domain"

// courseCatalog is the fixed set of featured courses. It never changes at
// runtime, so the usecase just hands out copies.
var courseCatalog = []domain.Course{
	{
		Title:       "Microsoft Excel/Google Sheets Mastery",
		Description: "From basic formulas to advanced pivot tables, master the art of spreadsheet analysis for business intelligence.",
		Duration:    "4 weeks",
		Level:       "Beginner-Intermediate",
		Price:       "₦50,000",
		Features:    []string{"Advanced formulas", "Pivot tables", "Data validation", "Automation"},
	},
	{
		Title:       "Power BI Dashboard Design",
		Description: "Create stunning, interactive dashboards that tell compelling data stories and drive business decisions.",
		Duration:    "3 weeks",
		Level:       "Beginner - Intermediate",
		Price:       "₦40,000",
		Features:    []string{"Dashboard design", "DAX formulas", "Data modeling", "Report publishing"},
	},
	{
		Title:       "SQL for Data Analysis",
		Description: "Master database querying, data manipulation, and advanced SQL techniques for real-world analysis.",
		Duration:    "6 weeks",
		Level:       "Beginner - Intermediate",
		Price:       "₦50,000",
		Features:    []string{"Query optimization", "Joins & subqueries", "Window functions", "Performance tuning"},
	},
	{
		Title:       "Python for Data Science",
		Description: "Learn Python programming with pandas, matplotlib, and scikit-learn for advanced data analysis.",
		Duration:    "8 weeks",
		Level:       "Beginner - Advanced",
		Price:       "₦60,000",
		Features:    []string{"Pandas & NumPy", "Data visualization", "Machine learning", "Web scraping"},
	},
}

type courseUsecase struct{}

// NewCourseUsecase creates a new course catalog usecase
func NewCourseUsecase() domain.CourseUsecase {
	return &courseUsecase{}
}

func (uc *courseUsecase) ListCourses() []domain.Course {
	out := make([]domain.Course, len(courseCatalog))
	copy(out, courseCatalog)
	return out
}
