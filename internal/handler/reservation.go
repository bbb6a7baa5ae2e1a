package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-reservation/internal/model"
	"github.com/iliyamo/library-reservation/internal/queue"
	"github.com/iliyamo/library-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/library-reservation/internal/service"
)

// reservationEvent converts a stored reservation into its broker payload.
func reservationEvent(res model.Reservation) queue.ReservationCreatedEvent {
	ev := queue.ReservationCreatedEvent{
		ReservationID: res.ID,
		UserID:        res.UserID,
		BookID:        res.BookID,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if res.ReservationDate != nil {
		ev.ReservationDate = res.ReservationDate.UTC().Format(time.RFC3339)
	}
	if res.ReturnDate != nil {
		ev.ReturnDate = res.ReturnDate.UTC().Format(time.RFC3339)
	}
	return ev
}

// ReservationHandler exposes CRUD over reservations.  Creating a
// reservation additionally publishes a reservation.created event to the
// message broker; publish failures are logged and ignored so the broker
// being down never fails the request.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
}

func NewReservationHandler(r *repository.ReservationRepo) *ReservationHandler {
	return &ReservationHandler{Reservations: r}
}

// reservationReq is the payload accepted by create and update.
type reservationReq struct {
	UserID          string     `json:"user_id"`
	BookID          string     `json:"book_id"`
	ReservationDate *time.Time `json:"reservation_date"`
	ReturnDate      *time.Time `json:"return_date"`
}

// GetAll handles GET /api/reservations.
func (h *ReservationHandler) GetAll(c echo.Context) error {
	out, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		c.Logger().Warnf("unable to load data (Reservation::GetAll): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, out)
}

// GetOne handles GET /api/reservations/:id.
func (h *ReservationHandler) GetOne(c echo.Context) error {
	res, err := h.Reservations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (Reservation::GetOne): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	return c.JSON(http.StatusOK, res)
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.UserID == "" || req.BookID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id/book_id required"})
	}
	res := model.Reservation{
		UserID:          req.UserID,
		BookID:          req.BookID,
		ReservationDate: req.ReservationDate,
		ReturnDate:      req.ReturnDate,
	}
	if err := h.Reservations.Create(c.Request().Context(), &res); err != nil {
		if err == repository.ErrBadRelation {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown user or book"})
		}
		c.Logger().Warnf("unable to insert data (Reservation::Create): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "insert failed"})
	}

	if err := queue_publisher.PublishReservationCreated(c.Request().Context(), reservationEvent(res)); err != nil {
		c.Logger().Warnf("event publish failed (Reservation::Create): %v", err)
	}
	return c.JSON(http.StatusOK, res)
}

// Update handles PUT /api/reservations/:id.
func (h *ReservationHandler) Update(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	res, err := h.Reservations.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Warnf("unable to load data (Reservation::Update): %v", err)
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	}
	if req.UserID != "" {
		res.UserID = req.UserID
	}
	if req.BookID != "" {
		res.BookID = req.BookID
	}
	if req.ReservationDate != nil {
		res.ReservationDate = req.ReservationDate
	}
	if req.ReturnDate != nil {
		res.ReturnDate = req.ReturnDate
	}
	if err := h.Reservations.Update(c.Request().Context(), &res); err != nil {
		if err == repository.ErrBadRelation {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown user or book"})
		}
		c.Logger().Warnf("unable to update data (Reservation::Update): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, res)
}

// Delete handles DELETE /api/reservations/:id.
func (h *ReservationHandler) Delete(c echo.Context) error {
	if err := h.Reservations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			c.Logger().Warnf("unable to delete data (Reservation::Delete): reservation not found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		c.Logger().Warnf("unable to delete data (Reservation::Delete): %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, deletedResp{Status: true, Message: "Record deleted successfully"})
}
