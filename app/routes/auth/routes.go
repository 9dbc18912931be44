package auth

import (
	"strings"
	"time"

	"acadia-schools/app/config"
	"acadia-schools/app/database"
	"acadia-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/profile", ShowProfilePage)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/exam-schedules")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Acadia Schools",
	}, "")
}

func ShowProfilePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	userRoles := c.Locals("user_roles").([]*models.Role)

	// Prefer the stored record over the claims snapshot; names may have
	// changed since the token was issued
	if fresh, err := database.GetUserByID(config.GetDB(), user.ID); err == nil {
		fresh.Roles = user.Roles
		user = fresh
	}

	// Handle case where user has no roles
	roleName := ""
	if len(userRoles) > 0 {
		roleName = userRoles[0].Name
	}

	return c.Render("auth/profile", fiber.Map{
		"Title":       "Profile - Acadia Schools",
		"CurrentPage": "profile",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
		"Role":        roleName,
	})
}

// AuthMiddleware validates JWT and sets user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	// Check if this is an API request
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Validate JWT token
	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		// For web pages, redirect to login
		return c.Redirect("/auth/login")
	}

	// Logins carry a session row; a deleted or expired row means the login
	// was revoked even if the JWT is still within its lifetime
	if sessionID := c.Cookies("session_id"); sessionID != "" {
		session, err := database.GetSessionByID(config.GetDB(), sessionID)
		if err != nil || session.ExpiresAt.Before(time.Now()) {
			if isAPIRequest {
				return c.Status(401).JSON(fiber.Map{"error": "Session expired"})
			}
			return c.Redirect("/auth/login")
		}
	}

	// Set user context
	user := claims.User()
	c.Locals("user_id", user.ID)
	c.Locals("user_email", user.Email)
	c.Locals("user_first_name", user.FirstName)
	c.Locals("user_last_name", user.LastName)
	c.Locals("user_roles", user.Roles)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if user has required role
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRoles := c.Locals("user_roles").([]*models.Role)

		for _, userRole := range userRoles {
			for _, allowedRole := range allowedRoles {
				if userRole.Name == allowedRole {
					return c.Next()
				}
			}
		}

		// Check if this is an API request
		isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

		if isAPIRequest {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		// For web pages, show 403 error page
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Acadia Schools",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
			"user":         c.Locals("user"),
		})
	}
}
