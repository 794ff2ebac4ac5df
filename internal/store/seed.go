package store

import "PROFILE_EXPLORER_BACK-END/internal/models"

// SampleProfiles returns the fixed records the collection starts with.
func SampleProfiles() []models.Profile {
	return []models.Profile{
		{
			ID:          1,
			Name:        "Rahul Srivastava",
			Title:       "Software Engineer",
			Photo:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah&backgroundColor=b6e3f4",
			Location:    "Mumbai, Maharashtra",
			Coordinates: &models.Coordinates{Lat: 19.076, Lng: 72.8777},
			Email:       "rahul.srivastava@gmail.com",
			Phone:       "8390538444",
			Description: "Full-stack developer with 5 years of experience in React and Node.js",
			Interests:   []string{"Coding", "Hiking", "Photography"},
			Skills:      []string{"React", "JavaScript", "Python"},
		},
		{
			ID:          2,
			Name:        "Raj Singh",
			Title:       "UX Designer",
			Photo:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Michael&backgroundColor=c0aede",
			Location:    "Pune, Maharastra",
			Coordinates: &models.Coordinates{Lat: 18.5204, Lng: 73.8567},
			Email:       "raj.singh@gmail.com",
			Phone:       "8390538777",
			Description: "Creative designer focused on user-centered design principles",
			Interests:   []string{"Design", "Travel", "Music"},
			Skills:      []string{"Figma", "UI/UX", "Prototyping"},
		},
		{
			ID:          3,
			Name:        "Kavish Desai",
			Title:       "Product Manager",
			Photo:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Arjun&backgroundColor=ffdfbf",
			Location:    "Indore, Madhya Pradesh",
			Coordinates: &models.Coordinates{Lat: 22.7196, Lng: 75.8577},
			Email:       "kavish.desai@gmail.com",
			Phone:       "8390538666",
			Description: "Product manager specializing in agile methodologies and user-centric development",
			Interests:   []string{"Product Strategy", "Team Building", "Innovation"},
			Skills:      []string{"Agile", "Product Development", "Team Leadership"},
		},
		{
			ID:          4,
			Name:        "Om Kadam",
			Title:       "Data Scientist",
			Photo:       "https://api.dicebear.com/7.x/avataaars/svg?seed=David&backgroundColor=d1f4d9",
			Location:    "Pune, Maharastra",
			Coordinates: &models.Coordinates{Lat: 18.5204, Lng: 73.8567},
			Email:       "om.kadam@gmail.com",
			Phone:       "8490538544",
			Description: "Data scientist with expertise in machine learning and statistical analysis",
			Interests:   []string{"AI", "Machine Learning", "Data Analysis"},
			Skills:      []string{"Python", "TensorFlow", "SQL"},
		},
	}
}
