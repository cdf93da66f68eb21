package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func (c *Client) AvailableRooms(ctx context.Context) ([]Room, error) {
	var payload struct {
		Rooms []Room `json:"rooms"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/room/available-rooms", nil, &payload, false); err != nil {
		return nil, err
	}
	return payload.Rooms, nil
}

func (c *Client) RoomByNumber(ctx context.Context, roomNumber string) (Room, error) {
	var payload struct {
		Room Room `json:"room"`
	}
	path := "/api/v1/room/" + url.PathEscape(roomNumber)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload, false); err != nil {
		return Room{}, err
	}
	return payload.Room, nil
}

type PhotoUpload struct {
	Filename string
	Data     []byte
}

type CreateRoomInput struct {
	RoomNumber  string
	RoomType    string
	Price       float64
	Capacity    int
	Amenities   []string
	Description string
	Discount    float64
	Stars       int
	Photos      []PhotoUpload
}

// CreateRoom posts the multipart room form the admin console submits.
func (c *Client) CreateRoom(ctx context.Context, input CreateRoomInput) (Room, error) {
	c.sessions.Repair()
	sess, ok := c.sessions.Session()
	if !ok {
		return Room{}, ErrSessionExpired
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"roomNumber":      input.RoomNumber,
		"roomType":        input.RoomType,
		"price":           strconv.FormatFloat(input.Price, 'f', -1, 64),
		"capacity":        strconv.Itoa(input.Capacity),
		"amenities":       strings.Join(input.Amenities, ","),
		"roomDescription": input.Description,
		"discount":        strconv.FormatFloat(input.Discount, 'f', -1, 64),
		"stars":           strconv.Itoa(input.Stars),
	}
	for key, value := range fields {
		if err := form.WriteField(key, value); err != nil {
			return Room{}, fmt.Errorf("write form field %s: %w", key, err)
		}
	}
	for _, photo := range input.Photos {
		part, err := form.CreateFormFile("images", photo.Filename)
		if err != nil {
			return Room{}, fmt.Errorf("add photo part: %w", err)
		}
		if _, err := part.Write(photo.Data); err != nil {
			return Room{}, fmt.Errorf("write photo part: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return Room{}, fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/room/create", &buf)
	if err != nil {
		return Room{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sess.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Room{}, &APIError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Room{}, c.failure(resp)
	}

	var payload struct {
		Room Room `json:"room"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Room{}, fmt.Errorf("decode response body: %w", err)
	}
	return payload.Room, nil
}
