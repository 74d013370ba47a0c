package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yuviart/storefront/internal/backend"
	"github.com/yuviart/storefront/internal/hash"
	"github.com/yuviart/storefront/internal/logging"
	"github.com/yuviart/storefront/internal/models"
	"github.com/yuviart/storefront/internal/session"
	"github.com/yuviart/storefront/internal/validate"
)

type AuthHandler struct {
	Client            *backend.Client
	Sessions          *session.Store
	JWTSecret         []byte
	AdminEmail        string
	AdminPasswordHash string
	MockMode          bool
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin authenticates against the collaborator and falls back to the
// locally configured admin account when the collaborator is unreachable.
// The issued token is opaque and lives in the session store until logout.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin_login")

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errs := validate.Credentials(req.Email, req.Password); !errs.OK() {
		return validationError(c, errs)
	}

	var (
		token string
		admin models.Admin
	)
	if h.MockMode {
		offlineToken, offlineAdmin, ok := h.offlineLogin(req.Email, req.Password)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}
		token, admin = offlineToken, offlineAdmin
	} else {
		result, err := h.Client.AdminLogin(ctx, req.Email, req.Password)
		switch {
		case err == nil:
			token, admin = result.Token, result.Admin
		case errors.Is(err, backend.ErrUnavailable):
			offlineToken, offlineAdmin, ok := h.offlineLogin(req.Email, req.Password)
			if !ok {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "backend unavailable")
			}
			l.Info("offline admin login", "email", req.Email)
			token, admin = offlineToken, offlineAdmin
		default:
			return adminLoginError(err)
		}
	}

	if err := h.Sessions.AdminLogin(ctx, token, admin); err != nil {
		l.Error("session persist failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "could not persist session")
	}

	l.Info("admin login", "email", admin.Email)
	return c.JSON(http.StatusOK, echo.Map{
		"token":          token,
		"admin":          admin,
		"pendingArtwork": h.Sessions.HasPendingArtwork(ctx),
	})
}

// adminLoginError keeps the login form's wording for the two statuses the
// collaborator distinguishes.
func adminLoginError(err error) error {
	var rejected *backend.RejectedError
	if errors.As(err, &rejected) {
		switch rejected.Status {
		case http.StatusUnauthorized:
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		case http.StatusNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Account not found")
		}
	}
	return backendError(err)
}

func (h *AuthHandler) offlineLogin(email, password string) (string, models.Admin, bool) {
	if h.AdminEmail == "" || email != h.AdminEmail {
		return "", models.Admin{}, false
	}
	if !hash.CheckPassword(h.AdminPasswordHash, password) {
		return "", models.Admin{}, false
	}
	admin := models.Admin{ID: 1, Name: "Admin", Email: email, Role: "admin"}
	return uuid.NewString(), admin, true
}

func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	errs := validate.Signup(validate.SignupForm{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if !errs.OK() {
		return validationError(c, errs)
	}

	result, err := h.Client.AdminSignup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return backendError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) AdminSession(c echo.Context) error {
	ctx := c.Request().Context()
	token, admin, err := h.Sessions.AdminSession(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token":          token,
		"admin":          admin,
		"pendingArtwork": h.Sessions.HasPendingArtwork(ctx),
	})
}

func (h *AuthHandler) AdminLogout(c echo.Context) error {
	if err := h.Sessions.AdminLogout(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// SavePendingArtwork parks an artwork draft while the admin re-authenticates.
// The body is stored as-is and handed back by the take route.
func (h *AuthHandler) SavePendingArtwork(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !json.Valid(body) {
		return echo.NewHTTPError(http.StatusBadRequest, "body must be JSON")
	}

	if err := h.Sessions.SavePendingArtwork(c.Request().Context(), body); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) TakePendingArtwork(c echo.Context) error {
	draft, err := h.Sessions.TakePendingArtwork(c.Request().Context())
	if errors.Is(err, session.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "no pending artwork")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSONBlob(http.StatusOK, draft)
}

// Signup creates a storefront account. Accounts are demo-only: nothing is
// stored beyond the session, the token just lets the UI show a signed-in
// state.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	errs := validate.Signup(validate.SignupForm{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if !errs.OK() {
		return validationError(c, errs)
	}

	user := models.User{
		ID:    uint(time.Now().Unix()),
		Name:  req.Name,
		Email: req.Email,
	}
	return h.issueUserToken(c, user)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errs := validate.Credentials(req.Email, req.Password); !errs.OK() {
		return validationError(c, errs)
	}

	name := req.Email
	if at := strings.Index(name, "@"); at > 0 {
		name = name[:at]
	}
	user := models.User{
		ID:    uint(time.Now().Unix()),
		Name:  name,
		Email: req.Email,
	}
	return h.issueUserToken(c, user)
}

func (h *AuthHandler) issueUserToken(c echo.Context, user models.User) error {
	ctx := c.Request().Context()

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create token")
	}

	if err := h.Sessions.UserLogin(ctx, token, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not persist session")
	}

	logging.FromContext(ctx).Info("user login", "email", user.Email)
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.Sessions.UserLogout(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
