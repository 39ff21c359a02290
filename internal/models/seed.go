// internal/models/seed.go
package models

// SeedProjects returns the built-in demo dataset used when neither the remote
// gateway nor the persistent cache has any data.
func SeedProjects() []Project {
	return []Project{
		{
			ID:               "1",
			Title:            "Women in Tech Mentorship Program",
			ShortDescription: "Connect aspiring women technologists with experienced mentors in the industry",
			DetailedDescription: "Our mentorship program pairs women entering the tech industry with experienced " +
				"professionals who can guide them through career challenges, technical skills development, and " +
				"professional growth. Mentors commit to monthly meetings and ongoing support.",
			Category:     "Technology",
			SkillsNeeded: []string{"Mentoring", "Technology", "Communication"},
			ProjectType:  ProjectOnline,
			StartDate:    "2025-02-01",
			EndDate:      "2025-08-01",
			ImageURL:     "/women-tech-mentorship.jpg",
			CreatorID:    "demo",
			CreatorName:  "Sarah Johnson",
			CreatorEmail: "sarah@womenrisehub.org",
			CreatorPhone: "+1234567890",
			Events: []Event{
				{
					ID:             "e1",
					Name:           "Kickoff Meeting",
					Date:           "2025-02-01",
					Time:           "10:00 AM",
					Description:    "Introduction session for all mentors and mentees",
					SlotsAvailable: 50,
				},
				{
					ID:             "e2",
					Name:           "Mid-Program Check-in",
					Date:           "2025-05-01",
					Time:           "2:00 PM",
					Description:    "Group discussion and progress sharing",
					SlotsAvailable: 50,
				},
			},
			Volunteers:   []Volunteer{},
			Applications: []Application{},
		},
		{
			ID:               "2",
			Title:            "Community Health & Wellness Fair",
			ShortDescription: "Organize a health fair providing free screenings and wellness education",
			DetailedDescription: "A day-long community event offering free health screenings, wellness workshops, " +
				"and educational resources. We need volunteers to help with registration, guide attendees, assist " +
				"healthcare providers, and manage information booths.",
			Category:     "Welfare",
			SkillsNeeded: []string{"Event Management", "Healthcare", "Communication", "Organization"},
			ProjectType:  ProjectOnsite,
			Location:     "Mumbai Community Center, India",
			StartDate:    "2025-03-15",
			EndDate:      "2025-03-15",
			ImageURL:     "/health-wellness-fair.jpg",
			CreatorID:    "demo2",
			CreatorName:  "Priya Sharma",
			CreatorEmail: "priya@womenrisehub.org",
			CreatorPhone: "+919876543210",
			Events: []Event{
				{
					ID:             "e3",
					Name:           "Health Fair Day",
					Date:           "2025-03-15",
					Time:           "9:00 AM - 5:00 PM",
					Description:    "Main event day with all activities",
					SlotsAvailable: 30,
				},
			},
			Volunteers:   []Volunteer{},
			Applications: []Application{},
		},
		{
			ID:               "3",
			Title:            "Girls Coding Workshop Series",
			ShortDescription: "Teach coding fundamentals to girls aged 10-16 through interactive workshops",
			DetailedDescription: "A 6-week workshop series introducing young girls to programming through fun, " +
				"project-based learning. We use Scratch, Python, and web development basics to build confidence " +
				"and skills in technology.",
			Category:     "Education",
			SkillsNeeded: []string{"Teaching", "Programming", "Patience", "Curriculum Development"},
			ProjectType:  ProjectHybrid,
			Location:     "Delhi & Online",
			StartDate:    "2025-02-10",
			EndDate:      "2025-03-25",
			ImageURL:     "/girls-coding-workshop.jpg",
			CreatorID:    "demo3",
			CreatorName:  "Anita Desai",
			CreatorEmail: "anita@womenrisehub.org",
			CreatorPhone: "+919123456789",
			Events: []Event{
				{
					ID:             "e4",
					Name:           "Workshop Week 1: Introduction to Scratch",
					Date:           "2025-02-10",
					Time:           "4:00 PM",
					Description:    "Learn basic programming concepts with Scratch",
					SlotsAvailable: 20,
				},
				{
					ID:             "e5",
					Name:           "Workshop Week 3: Python Basics",
					Date:           "2025-02-24",
					Time:           "4:00 PM",
					Description:    "Introduction to Python programming",
					SlotsAvailable: 20,
				},
			},
			Volunteers:   []Volunteer{},
			Applications: []Application{},
		},
	}
}
