package api

import (
	"strings"
	"time"

	"github.com/arasywa/ecoisland/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

const defaultProfilePicture = "assets/images/profilePictures/default.png"

type credentialsInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, err
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	return input, nil
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if !emailRegex.MatchString(credentials.Email) {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if len(credentials.Password) < 8 {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	username := credentials.Username
	if username == "" {
		username, _, _ = strings.Cut(credentials.Email, "@")
	}
	profilePicture := credentials.ProfilePicture
	if profilePicture == "" {
		profilePicture = defaultProfilePicture
	}

	user := models.User{
		Email:          credentials.Email,
		PasswordHash:   string(passwordHash),
		Username:       username,
		ProfilePicture: profilePicture,
		JoinDate:       handler.now().In(handler.location),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	const loginAttemptsLimit = 8
	const loginAttemptsWindow = 15 * time.Minute

	now := handler.now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	credentials, err := parseCredentials(c)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.repositories.Users.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.loginLimiter.reset(limiterKey)

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
