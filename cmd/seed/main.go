package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/mongodb"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with the admin account, default profile content and
// sample records. Existing content collections are cleared first, so this
// is for fresh installs and local development only.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	if cfg.AdminPassword == "" {
		logger.Log.Error("ADMIN_PASSWORD must be set before seeding")
		os.Exit(1)
	}

	db, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Client().Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Clearing existing data")
	for _, name := range []string{"users", "profiles", "projects", "experience", "certifications"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			logger.Log.Error("Failed to clear collection", "collection", name, "error", err)
			os.Exit(1)
		}
	}

	logger.Log.Info("Creating admin user", "email", cfg.AdminEmail)
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("Failed to hash admin password", "error", err)
		os.Exit(1)
	}
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.Create(ctx, &domain.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}); err != nil {
		logger.Log.Error("Failed to create admin user", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Creating profile")
	profileRepo := mongodb.NewProfileRepository(db)
	if err := seedProfile(ctx, profileRepo); err != nil {
		logger.Log.Error("Failed to seed profile", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("Creating sample projects")
	projectRepo := mongodb.NewProjectRepository(db)
	for _, project := range sampleProjects() {
		if err := projectRepo.Create(ctx, project); err != nil {
			logger.Log.Error("Failed to seed project", "title", project.Title, "error", err)
			os.Exit(1)
		}
	}

	logger.Log.Info("Creating sample experience")
	experienceRepo := mongodb.NewExperienceRepository(db)
	for _, entry := range sampleExperience() {
		if err := experienceRepo.Create(ctx, entry); err != nil {
			logger.Log.Error("Failed to seed experience", "title", entry.Title, "error", err)
			os.Exit(1)
		}
	}

	logger.Log.Info("Creating sample certifications")
	certificationRepo := mongodb.NewCertificationRepository(db)
	for _, cert := range sampleCertifications() {
		if err := certificationRepo.Create(ctx, cert); err != nil {
			logger.Log.Error("Failed to seed certification", "title", cert.Title, "error", err)
			os.Exit(1)
		}
	}

	logger.Log.Info("Database seeded successfully", "admin_email", cfg.AdminEmail)
	logger.Log.Warn("Change the admin password before going to production")
}

func seedProfile(ctx context.Context, repo domain.ProfileRepository) error {
	strPtr := func(s string) *string { return &s }

	_, err := repo.ApplyPatch(ctx, &domain.ProfilePatch{
		Name:            strPtr("Your Name"),
		Title:           strPtr("Software Developer"),
		HeroDescription: strPtr("Passionate about creating innovative web solutions and building scalable applications."),
		AboutText:       strPtr("I specialize in building modern, responsive web applications using the latest technologies."),
		Email:           strPtr("hello@example.com"),
		Location:        strPtr("Remote"),
		SocialLinks: &domain.SocialLinks{
			GitHub:   "https://github.com/yourname",
			LinkedIn: "https://linkedin.com/in/yourname",
		},
		Stats: &domain.ProfileStats{
			ProjectsCompleted: 15,
			Technologies:      10,
			YearsLearning:     2,
		},
	})
	if err != nil {
		return err
	}

	skills := []domain.Skill{
		{Name: "HTML5", Category: domain.SkillCategoryFrontend, Icon: "fab fa-html5", Proficiency: 95},
		{Name: "CSS3", Category: domain.SkillCategoryFrontend, Icon: "fab fa-css3-alt", Proficiency: 90},
		{Name: "JavaScript", Category: domain.SkillCategoryFrontend, Icon: "fab fa-js", Proficiency: 85},
		{Name: "React", Category: domain.SkillCategoryFrontend, Icon: "fab fa-react", Proficiency: 80},
		{Name: "Go", Category: domain.SkillCategoryBackend, Icon: "fas fa-code", Proficiency: 75},
		{Name: "MongoDB", Category: domain.SkillCategoryBackend, Icon: "fas fa-database", Proficiency: 70},
		{Name: "Git", Category: domain.SkillCategoryTools, Icon: "fab fa-git-alt", Proficiency: 85},
	}
	for i := range skills {
		if _, err := repo.AddSkill(ctx, &skills[i]); err != nil {
			return err
		}
	}
	return nil
}

func sampleProjects() []*domain.Project {
	return []*domain.Project{
		{
			Title:           "Task Manager Application",
			Description:     "A full-stack task management application with real-time updates and user authentication.",
			LongDescription: "Features include task creation, editing, deletion, real-time updates, and token based authentication.",
			Technologies:    []string{"React", "Go", "MongoDB", "WebSocket"},
			Features:        []string{"Real-time updates", "User authentication", "Task categories", "Due date reminders"},
			Links: domain.ProjectLinks{
				GitHub: "https://github.com/yourname/task-manager",
				Live:   "https://taskmanager.example.com",
			},
			Category: "web",
			Status:   domain.ProjectStatusCompleted,
			Featured: true,
			Order:    1,
		},
		{
			Title:           "Weather Dashboard",
			Description:     "Modern weather application with 7-day forecast and location-based weather data.",
			LongDescription: "Responsive weather dashboard with current weather, hourly forecast, 7-day forecast, and location search.",
			Technologies:    []string{"React", "OpenWeather API", "Chart.js", "CSS3"},
			Features:        []string{"7-day forecast", "Location search", "Weather charts", "Responsive design"},
			Links: domain.ProjectLinks{
				GitHub: "https://github.com/yourname/weather-app",
				Live:   "https://weather.example.com",
			},
			Category: "web",
			Status:   domain.ProjectStatusCompleted,
			Featured: true,
			Order:    2,
		},
		{
			Title:           "Medical Appointment System",
			Description:     "Healthcare management system for booking and managing medical appointments.",
			LongDescription: "Patient registration, doctor scheduling, appointment booking, and medical records management.",
			Technologies:    []string{"React", "Go", "PostgreSQL"},
			Features:        []string{"Patient registration", "Doctor scheduling", "Appointment booking", "Medical records"},
			Links: domain.ProjectLinks{
				GitHub: "https://github.com/yourname/medical-system",
			},
			Category: "web",
			Status:   domain.ProjectStatusCompleted,
			Featured: true,
			Order:    3,
		},
	}
}

func sampleExperience() []*domain.Experience {
	return []*domain.Experience{
		{
			Type:         domain.ExperienceTypeEducation,
			Title:        "B.Tech in Information Technology",
			Organization: "State University",
			Location:     "Remote",
			Description:  "Bachelor of Technology in Information Technology with focus on web development and software engineering.",
			StartDate:    "2023",
			Current:      true,
			Technologies: []string{"Java", "Python", "Data Structures", "Algorithms"},
			Order:        1,
		},
		{
			Type:         domain.ExperienceTypeProject,
			Title:        "Team Project - E-commerce Platform",
			Organization: "Academic Project",
			Description:  "Developed a full-stack e-commerce platform as part of academic curriculum. Led a team of 4 developers.",
			StartDate:    "2024",
			EndDate:      "2024",
			Technologies: []string{"React", "Go", "MongoDB"},
			Achievements: []string{"Led team of 4 developers", "Implemented payment gateway"},
			Order:        2,
		},
		{
			Type:         domain.ExperienceTypeOther,
			Title:        "Self-Learning Web Development",
			Organization: "Online Courses & Projects",
			Description:  "Completed multiple online courses and built personal projects to strengthen web development skills.",
			StartDate:    "2023",
			EndDate:      "2024",
			Technologies: []string{"HTML", "CSS", "JavaScript", "React", "Go"},
			Order:        3,
		},
	}
}

func sampleCertifications() []*domain.Certification {
	return []*domain.Certification{
		{
			Title:       "Full Stack Web Development",
			Description: "Comprehensive course covering HTML, CSS, JavaScript, React, and backend development",
			Platform:    "Udemy",
			Icon:        "fas fa-code",
			IssueDate:   "2024",
			Order:       1,
		},
		{
			Title:       "JavaScript Algorithms and Data Structures",
			Description: "Advanced JavaScript programming and problem-solving techniques",
			Platform:    "freeCodeCamp",
			Icon:        "fab fa-js",
			IssueDate:   "2023",
			Order:       2,
		},
		{
			Title:       "Responsive Web Design",
			Description: "Modern CSS, Flexbox, Grid, and responsive design principles",
			Platform:    "freeCodeCamp",
			Icon:        "fas fa-mobile-alt",
			IssueDate:   "2023",
			Order:       3,
		},
		{
			Title:       "Go: The Complete Developer's Guide",
			Description: "Backend development with Go covering concurrency, testing, and web services",
			Platform:    "Udemy",
			Icon:        "fas fa-certificate",
			IssueDate:   "2024",
			Order:       4,
		},
	}
}
