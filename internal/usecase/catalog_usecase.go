package usecase

import (
	"fmt"
	"io"
	"mime/multipart"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/logger"
	"songhub/pkg/s3"
)

// ObjectStorage is the slice of the media store the usecases depend on.
// *s3.Client satisfies it.
type ObjectStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
	ObjectURL(key string) string
}

// CatalogUseCase manages creator-owned songs. Best-effort failures (stale
// object cleanup, unknown genre names) are reported as warnings next to the
// result instead of failing the operation.
type CatalogUseCase interface {
	AddSong(creatorID, title, description, genreName string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error)
	UpdateSong(songID, creatorID string, title, description, genreName *string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error)
	DeleteSong(songID, creatorID string) ([]string, error)
	GetCreatorSongs(creatorID string) ([]*entity.Song, error)
	ListGenres() ([]*entity.Genre, error)
	ListSongs(limit, offset int, genreName string) ([]*entity.Song, error)
	GetSong(id string) (*entity.Song, error)
}

type catalogUseCase struct {
	songRepo  persistent.SongRepository
	genreRepo persistent.GenreRepository
	storage   ObjectStorage
	logger    *logger.Logger
}

func NewCatalogUseCase(
	songRepo persistent.SongRepository,
	genreRepo persistent.GenreRepository,
	storage ObjectStorage,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		songRepo:  songRepo,
		genreRepo: genreRepo,
		storage:   storage,
		logger:    logger,
	}
}

func (uc *catalogUseCase) uploadFile(prefix string, fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := s3.ObjectKey(prefix, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := uc.storage.UploadFile(key, file, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// decorate fills derived media URLs from the stored object keys.
func (uc *catalogUseCase) decorate(song *entity.Song) *entity.Song {
	song.AudioURL = uc.storage.ObjectURL(song.AudioKey)
	song.CoverURL = uc.storage.ObjectURL(song.CoverKey)
	return song
}

// resolveGenre looks a genre up by name. An unknown name leaves the song
// untagged and produces a warning rather than an error.
func (uc *catalogUseCase) resolveGenre(genreName string) (string, []string) {
	if genreName == "" {
		return "", nil
	}
	genre, err := uc.genreRepo.GetByName(genreName)
	if err != nil {
		uc.logger.Warn("Genre %q not found, song stored untagged", genreName)
		return "", []string{fmt.Sprintf("unknown genre %q, song stored without genre", genreName)}
	}
	return genre.ID, nil
}

func (uc *catalogUseCase) AddSong(creatorID, title, description, genreName string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error) {
	var warnings []string

	genreID, genreWarnings := uc.resolveGenre(genreName)
	warnings = append(warnings, genreWarnings...)

	song := &entity.Song{
		CreatorID:   creatorID,
		Title:       title,
		Description: description,
		GenreID:     genreID,
	}

	if audio != nil {
		key, err := uc.uploadFile(s3.AudioPrefix, audio)
		if err != nil {
			uc.logger.Error("Failed to upload audio file: %v", err)
			return nil, nil, fmt.Errorf("failed to upload audio file")
		}
		song.AudioKey = key
	}
	if cover != nil {
		key, err := uc.uploadFile(s3.CoverPrefix, cover)
		if err != nil {
			uc.logger.Error("Failed to upload cover file: %v", err)
			return nil, nil, fmt.Errorf("failed to upload cover file")
		}
		song.CoverKey = key
	}

	if err := uc.songRepo.Create(song); err != nil {
		uc.logger.Error("Failed to create song: %v", err)
		return nil, nil, fmt.Errorf("failed to create song")
	}

	return uc.decorate(song), warnings, nil
}

func (uc *catalogUseCase) UpdateSong(songID, creatorID string, title, description, genreName *string, audio, cover *multipart.FileHeader) (*entity.Song, []string, error) {
	song, err := uc.songRepo.GetByIDForCreator(songID, creatorID)
	if err != nil {
		return nil, nil, fmt.Errorf("song not found")
	}

	var warnings []string

	if title != nil {
		song.Title = *title
	}
	if description != nil {
		song.Description = *description
	}
	if genreName != nil {
		genreID, genreWarnings := uc.resolveGenre(*genreName)
		song.GenreID = genreID
		song.GenreName = ""
		warnings = append(warnings, genreWarnings...)
	}

	if audio != nil {
		key, err := uc.uploadFile(s3.AudioPrefix, audio)
		if err != nil {
			uc.logger.Error("Failed to upload audio file: %v", err)
			return nil, nil, fmt.Errorf("failed to upload audio file")
		}
		warnings = append(warnings, uc.removeObject(song.AudioKey)...)
		song.AudioKey = key
	}
	if cover != nil {
		key, err := uc.uploadFile(s3.CoverPrefix, cover)
		if err != nil {
			uc.logger.Error("Failed to upload cover file: %v", err)
			return nil, nil, fmt.Errorf("failed to upload cover file")
		}
		warnings = append(warnings, uc.removeObject(song.CoverKey)...)
		song.CoverKey = key
	}

	if err := uc.songRepo.Update(song); err != nil {
		uc.logger.Error("Failed to update song %s: %v", songID, err)
		return nil, nil, fmt.Errorf("failed to update song")
	}

	updated, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update song")
	}
	return uc.decorate(updated), warnings, nil
}

func (uc *catalogUseCase) DeleteSong(songID, creatorID string) ([]string, error) {
	song, err := uc.songRepo.GetByIDForCreator(songID, creatorID)
	if err != nil {
		return nil, fmt.Errorf("song not found")
	}

	if err := uc.songRepo.Delete(songID); err != nil {
		uc.logger.Error("Failed to delete song %s: %v", songID, err)
		return nil, fmt.Errorf("failed to delete song")
	}

	// Stored media cleanup is best-effort: the row is already gone, so a
	// failed object delete only produces a warning.
	var warnings []string
	warnings = append(warnings, uc.removeObject(song.AudioKey)...)
	warnings = append(warnings, uc.removeObject(song.CoverKey)...)
	return warnings, nil
}

func (uc *catalogUseCase) removeObject(key string) []string {
	if key == "" {
		return nil
	}
	if err := uc.storage.DeleteFile(key); err != nil {
		uc.logger.Warn("Failed to delete object %s: %v", key, err)
		return []string{fmt.Sprintf("failed to delete stored file %s", key)}
	}
	return nil
}

func (uc *catalogUseCase) GetCreatorSongs(creatorID string) ([]*entity.Song, error) {
	songs, err := uc.songRepo.GetByCreatorID(creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs")
	}
	for i := range songs {
		uc.decorate(songs[i])
	}
	return songs, nil
}

func (uc *catalogUseCase) ListGenres() ([]*entity.Genre, error) {
	return uc.genreRepo.List()
}

func (uc *catalogUseCase) ListSongs(limit, offset int, genreName string) ([]*entity.Song, error) {
	genreID := ""
	if genreName != "" {
		genre, err := uc.genreRepo.GetByName(genreName)
		if err != nil {
			// Unknown genre filter matches nothing
			return []*entity.Song{}, nil
		}
		genreID = genre.ID
	}

	songs, err := uc.songRepo.List(limit, offset, genreID)
	if err != nil {
		return nil, fmt.Errorf("failed to list songs")
	}
	for i := range songs {
		uc.decorate(songs[i])
	}
	return songs, nil
}

func (uc *catalogUseCase) GetSong(id string) (*entity.Song, error) {
	song, err := uc.songRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.decorate(song), nil
}
