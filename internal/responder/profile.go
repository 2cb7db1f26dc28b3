package responder

// Profile is the identity record every reply is rendered from.
type Profile struct {
	Name      string
	Role      string
	Company   string
	Education Education
	Focus     []string
	Links     Links
}

// Education describes the degree the profile holder earned.
type Education struct {
	School     string
	Graduation string
}

// Links groups the public URLs referenced in replies.
type Links struct {
	DevLibrary string
	Blogs      []string
	GitHub     string
	Projects   ProjectLinks
}

// ProjectLinks are the showcased repositories.
type ProjectLinks struct {
	CO2        string
	Kanban     string
	KanbanLive string
}

// DefaultProfile returns the built-in profile of the site owner.
func DefaultProfile() Profile {
	return Profile{
		Name:    "Divyansh Saraswat",
		Role:    "Software Development Engineer (SDE)",
		Company: "Nielsen",
		Education: Education{
			School:     "BITS Pilani",
			Graduation: "May 2025",
		},
		Focus: []string{"ML engineering", "frontend engineering", "C++", "Windows programming"},
		Links: Links{
			DevLibrary: "https://devlibrary.withgoogle.com/authors/saraswatdivyansh",
			Blogs: []string{
				"https://proandroiddev.com/upload-images-to-firebase-cloud-storage-workmanager-6586f1ea3f9d",
				"https://proandroiddev.com/google-news-clone-in-kotlin-using-paging-3-and-hilt-2127d19fe09d",
			},
			GitHub: "https://github.com/DivS-15",
			Projects: ProjectLinks{
				CO2:        "https://github.com/DivS-15/Carbon-dioxide_prediction_model",
				Kanban:     "https://github.com/DivS-15/kanban-board-react",
				KanbanLive: "https://divs-15.github.io/kanban-board-react/",
			},
		},
	}
}
