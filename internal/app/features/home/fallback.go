package home

import "github.com/hopeworks/ngohub/internal/domain/models"

// Fallback datasets keep the landing page presentable while the backend is
// down. They mirror the shape of real content but carry no record IDs, so
// nothing here can be edited or deleted.

func fallbackSlides() []models.HeroSlide {
	return []models.HeroSlide{
		{
			Title:    "Building brighter futures together",
			Subtitle: "Community-led programs in education, health and livelihoods.",
			Autoplay: true,
			Duration: models.DefaultSlideDuration,
		},
		{
			Title:    "Every child deserves a classroom",
			Subtitle: "Join us in bringing quality education to rural communities.",
			Autoplay: true,
			Duration: models.DefaultSlideDuration,
		},
	}
}

func fallbackStats() []models.Stat {
	return []models.Stat{
		{Icon: "🏘️", Color: "#2563eb", Number: 120, Label: "Villages reached"},
		{Icon: "🎓", Color: "#16a34a", Number: 8500, Label: "Children in school"},
		{Icon: "🤝", Color: "#d97706", Number: 300, Label: "Volunteers"},
		{Icon: "📅", Color: "#dc2626", Number: 15, Label: "Years of service"},
	}
}

func fallbackCards() []models.AboutItem {
	return []models.AboutItem{
		{
			Title:       "Who we are",
			Description: "A grassroots organization working with rural communities since 2010.",
		},
		{
			Title:       "What we do",
			Description: "Education, healthcare and livelihood programs designed with the people they serve.",
		},
	}
}

func fallbackVideos() []models.VideoItem {
	return nil
}
