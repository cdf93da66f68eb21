package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/repository"
	"hostelhub/internal/service"
)

func (h HandlerSet) AvailableRooms(c *gin.Context) {
	rooms, err := h.rooms.Available(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

func (h HandlerSet) RoomByNumber(c *gin.Context) {
	room, err := h.rooms.ByNumber(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// CreateRoom accepts a multipart form: room fields plus photo files under
// "images".
func (h HandlerSet) CreateRoom(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	value := func(key string) string {
		values := form.Value[key]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}

	price, err := strconv.ParseFloat(value("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	capacity, err := strconv.Atoi(value("capacity"))
	if err != nil || capacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid capacity"})
		return
	}
	discount, err := strconv.ParseFloat(value("discount"), 64)
	if err != nil || discount < 0 || discount > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		return
	}
	stars, err := strconv.Atoi(value("stars"))
	if err != nil || stars < 1 || stars > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stars"})
		return
	}

	roomNumber := value("roomNumber")
	roomType := value("roomType")
	if roomNumber == "" || roomType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomNumber and roomType required"})
		return
	}

	var amenities []string
	for _, amenity := range strings.Split(value("amenities"), ",") {
		if amenity = strings.TrimSpace(amenity); amenity != "" {
			amenities = append(amenities, amenity)
		}
	}

	room, err := h.rooms.Create(c.Request.Context(), service.CreateRoomInput{
		RoomNumber:  roomNumber,
		RoomType:    roomType,
		Price:       price,
		Capacity:    capacity,
		Amenities:   amenities,
		Description: value("roomDescription"),
		Discount:    discount,
		Stars:       stars,
		Photos:      form.File["images"],
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrBadPhoto):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "room created", "room": room})
}
