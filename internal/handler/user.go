package handler

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-reservation/internal/model"
	"github.com/iliyamo/library-reservation/internal/repository"
	"github.com/iliyamo/library-reservation/internal/utils"
)

// UserHandler exposes the user endpoints.  Create is open to any
// authenticated caller; GetOne, Update and Delete are additionally
// wrapped by the RequireSelf middleware so a caller can only touch their
// own record.  There is intentionally no list endpoint.
type UserHandler struct {
	Users *repository.UserRepo
}

func NewUserHandler(u *repository.UserRepo) *UserHandler { return &UserHandler{Users: u} }

// userReq is the payload accepted by create and update.  The password
// arrives in plaintext and is digested before it touches the store.
type userReq struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Active   bool    `json:"active"`
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// GetOne handles GET /api/users/:id.
func (h *UserHandler) GetOne(c echo.Context) error {
	u, err := h.Users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (User::GetOne): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, u)
}

// Create handles POST /api/users.  The stored credential is the digest
// of the submitted password, never the plaintext.
func (h *UserHandler) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	u := model.User{
		Email:    req.Email,
		Password: utils.HashPassword(req.Password),
		Active:   req.Active,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := h.Users.Create(c.Request().Context(), &u); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		c.Logger().Warnf("unable to insert data (User::Create): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Update handles PUT /api/users/:id.  The stored record is loaded and
// merged with the payload; the submitted password is re-digested the
// same way Create digests it.
func (h *UserHandler) Update(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	u, err := h.Users.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (User::Update): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if req.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Password != "" {
		u.Password = utils.HashPassword(req.Password)
	}
	u.Active = req.Active
	if req.Name != nil {
		u.Name = req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	if err := h.Users.Update(c.Request().Context(), &u); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		c.Logger().Warnf("unable to update data (User::Update): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.Users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.Logger().Warnf("unable to delete data (User::Delete): user not found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Warnf("unable to delete data (User::Delete): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, deletedResp{Status: true, Message: "Record deleted successfully"})
}
