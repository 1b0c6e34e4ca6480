package routes

import (
	"net/http"

	"portfolioapi/handlers"
	"portfolioapi/middlewares"
)

// Handlers bundles everything SetupRoutes needs to wire.
type Handlers struct {
	Project     *handlers.ProjectHandler
	Skill       *handlers.SkillHandler
	Experience  *handlers.ExperienceHandler
	Achievement *handlers.AchievementHandler
	Contact     *handlers.ContactHandler
	Auth        *handlers.AuthHandler
	Image       *handlers.ImageHandler
}

// SetupRoutes builds the full API surface. Reads on the four public entities
// and the contact form POST are open; everything else requires the admin
// session, including upload/delete-image.
func SetupRoutes(h Handlers, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	admin := middlewares.JWTMiddleware(jwtSecret)

	mux.HandleFunc("GET /api/health", handlers.Health)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// Projects
	mux.HandleFunc("GET /api/projects", h.Project.GetAll)
	mux.HandleFunc("GET /api/projects/{id}", h.Project.GetByID)
	mux.Handle("POST /api/projects", admin(http.HandlerFunc(h.Project.Create)))
	mux.Handle("PUT /api/projects/{id}", admin(http.HandlerFunc(h.Project.Update)))
	mux.Handle("DELETE /api/projects/{id}", admin(http.HandlerFunc(h.Project.Delete)))

	// Skills
	mux.HandleFunc("GET /api/skills", h.Skill.GetAll)
	mux.HandleFunc("GET /api/skills/{id}", h.Skill.GetByID)
	mux.Handle("POST /api/skills", admin(http.HandlerFunc(h.Skill.Create)))
	mux.Handle("PUT /api/skills/{id}", admin(http.HandlerFunc(h.Skill.Update)))
	mux.Handle("DELETE /api/skills/{id}", admin(http.HandlerFunc(h.Skill.Delete)))

	// Experience
	mux.HandleFunc("GET /api/experience", h.Experience.GetAll)
	mux.HandleFunc("GET /api/experience/{id}", h.Experience.GetByID)
	mux.Handle("POST /api/experience", admin(http.HandlerFunc(h.Experience.Create)))
	mux.Handle("PUT /api/experience/{id}", admin(http.HandlerFunc(h.Experience.Update)))
	mux.Handle("DELETE /api/experience/{id}", admin(http.HandlerFunc(h.Experience.Delete)))

	// Achievements
	mux.HandleFunc("GET /api/achievements", h.Achievement.GetAll)
	mux.HandleFunc("GET /api/achievements/{id}", h.Achievement.GetByID)
	mux.Handle("POST /api/achievements", admin(http.HandlerFunc(h.Achievement.Create)))
	mux.Handle("PUT /api/achievements/{id}", admin(http.HandlerFunc(h.Achievement.Update)))
	mux.Handle("DELETE /api/achievements/{id}", admin(http.HandlerFunc(h.Achievement.Delete)))

	// Contacts: public form submission, admin-only inbox
	mux.HandleFunc("POST /api/contacts", h.Contact.Submit)
	mux.Handle("GET /api/contacts", admin(http.HandlerFunc(h.Contact.GetAll)))
	mux.Handle("GET /api/contacts/{id}", admin(http.HandlerFunc(h.Contact.GetByID)))
	mux.Handle("PUT /api/contacts/{id}", admin(http.HandlerFunc(h.Contact.Update)))
	mux.Handle("DELETE /api/contacts/{id}", admin(http.HandlerFunc(h.Contact.Delete)))

	// Images
	mux.Handle("POST /api/upload", admin(http.HandlerFunc(h.Image.Upload)))
	mux.Handle("POST /api/delete-image", admin(http.HandlerFunc(h.Image.DeleteImage)))

	return mux
}
