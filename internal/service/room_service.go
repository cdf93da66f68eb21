package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"hostelhub/internal/ids"
	"hostelhub/internal/media/sniffer"
	"hostelhub/internal/models"
	"hostelhub/internal/repository"
	"hostelhub/internal/storage"
)

var ErrBadPhoto = errors.New("unsupported room photo")

const maxPhotoBytes = 10 << 20

type RoomService struct {
	rooms *repository.RoomRepository
	store *storage.ObjectStore
	log   zerolog.Logger
}

func NewRoomService(rooms *repository.RoomRepository, store *storage.ObjectStore, log zerolog.Logger) *RoomService {
	return &RoomService{
		rooms: rooms,
		store: store,
		log:   log,
	}
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
	Photos      []*multipart.FileHeader
}

func (s *RoomService) Create(ctx context.Context, input CreateRoomInput) (models.Room, error) {
	room := models.Room{
		ID:          ids.New(),
		RoomNumber:  input.RoomNumber,
		RoomType:    input.RoomType,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Amenities:   input.Amenities,
		Description: input.Description,
		Discount:    input.Discount,
		Stars:       input.Stars,
		Available:   true,
	}

	for _, header := range input.Photos {
		key, err := s.storePhoto(ctx, room.ID, header)
		if err != nil {
			return models.Room{}, err
		}
		room.PhotoKeys = append(room.PhotoKeys, key)
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// storePhoto sniffs the uploaded file's real content type before handing it
// to the object store; declared MIME types are ignored.
func (s *RoomService) storePhoto(ctx context.Context, roomID string, header *multipart.FileHeader) (string, error) {
	if header.Size > maxPhotoBytes {
		return "", fmt.Errorf("%w: %s exceeds size limit", ErrBadPhoto, header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open photo: %w", err)
	}
	defer file.Close()

	result, head, err := sniffer.Detect(file)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrBadPhoto, header.Filename)
	}

	key := fmt.Sprintf("rooms/%s/%s.%s", roomID, ids.New(), result.Type)
	reader := io.MultiReader(bytes.NewReader(head), file)
	if err := s.store.PutRoomPhoto(ctx, key, reader, header.Size, result.MIME); err != nil {
		return "", err
	}
	return key, nil
}

type RoomView struct {
	models.Room
	PhotoURLs []string `json:"photoUrls"`
}

func (s *RoomService) withPhotoURLs(ctx context.Context, room models.Room) RoomView {
	view := RoomView{Room: room}
	for _, key := range room.PhotoKeys {
		url, err := s.store.PhotoURL(ctx, key, time.Hour)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("photo url failed")
			continue
		}
		view.PhotoURLs = append(view.PhotoURLs, url)
	}
	return view
}

func (s *RoomService) Available(ctx context.Context) ([]RoomView, error) {
	rooms, err := s.rooms.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]RoomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, s.withPhotoURLs(ctx, room))
	}
	return views, nil
}

func (s *RoomService) ByNumber(ctx context.Context, roomNumber string) (RoomView, error) {
	room, err := s.rooms.GetByNumber(ctx, roomNumber)
	if err != nil {
		return RoomView{}, err
	}
	return s.withPhotoURLs(ctx, room), nil
}
