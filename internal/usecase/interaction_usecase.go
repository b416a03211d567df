package usecase

import (
	"context"
	"fmt"
	"strconv"

	"songhub/internal/entity"
	"songhub/internal/repo/persistent"
	"songhub/pkg/logger"
	"songhub/pkg/queue"

	"github.com/redis/go-redis/v9"
)

type InteractionUseCase interface {
	LikeSong(userID, songID string) (bool, int64, error)
	IsLiked(userID, songID string) (bool, error)
	GetLikeCount(songID string) (int64, error)
	GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error)
	PlaySong(songID string) (int64, error)
}

type interactionUseCase struct {
	songRepo    persistent.SongRepository
	redisClient *redis.Client
	queueClient *queue.Client
	storage     ObjectStorage
	logger      *logger.Logger
}

func NewInteractionUseCase(
	songRepo persistent.SongRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	storage ObjectStorage,
	logger *logger.Logger,
) InteractionUseCase {
	return &interactionUseCase{
		songRepo:    songRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		storage:     storage,
		logger:      logger,
	}
}

func likeCountKey(songID string) string { return fmt.Sprintf("song:likes:%s", songID) }
func playCountKey(songID string) string { return fmt.Sprintf("song:plays:%s", songID) }

// LikeSong toggles the (user, song) like. The join table has a unique pair
// constraint, so the same user can never hold two likes on one song.
func (uc *interactionUseCase) LikeSong(userID, songID string) (bool, int64, error) {
	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return false, 0, fmt.Errorf("song not found")
	}

	isLiked, err := uc.songRepo.IsLiked(userID, songID)
	if err != nil {
		uc.logger.Error("Failed to check like status: %v", err)
		return false, 0, fmt.Errorf("failed to check like status")
	}

	ctx := context.Background()

	if isLiked {
		if err := uc.songRepo.DeleteLike(userID, songID); err != nil {
			uc.logger.Error("Failed to delete like: %v", err)
			return false, 0, fmt.Errorf("failed to unlike song")
		}
	} else {
		if err := uc.songRepo.CreateLike(userID, songID); err != nil {
			uc.logger.Error("Failed to create like: %v", err)
			return false, 0, fmt.Errorf("failed to like song")
		}
	}

	count, err := uc.songRepo.GetLikeCount(songID)
	if err != nil {
		uc.logger.Error("Failed to count likes for %s: %v", songID, err)
		return !isLiked, 0, nil
	}
	if err := uc.songRepo.SetLikeCount(songID, count); err != nil {
		uc.logger.Error("Failed to persist like count for %s: %v", songID, err)
	}
	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, likeCountKey(songID), count, 0)
	}

	if !isLiked && song.CreatorID != "" && uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":     "like",
				"user_id":  song.CreatorID,
				"liker_id": userID,
				"song_id":  songID,
				"priority": 3,
			}
			if err := uc.queueClient.PublishNotificationTask(task); err != nil {
				uc.logger.Error("Failed to publish like notification: %v", err)
			}
		}()
	}

	return !isLiked, count, nil
}

func (uc *interactionUseCase) IsLiked(userID, songID string) (bool, error) {
	return uc.songRepo.IsLiked(userID, songID)
}

func (uc *interactionUseCase) GetLikeCount(songID string) (int64, error) {
	ctx := context.Background()

	if uc.redisClient != nil {
		countStr, err := uc.redisClient.Get(ctx, likeCountKey(songID)).Result()
		if err == nil {
			count, _ := strconv.ParseInt(countStr, 10, 64)
			return count, nil
		}
	}

	count, err := uc.songRepo.GetLikeCount(songID)
	if err != nil {
		return 0, fmt.Errorf("song not found")
	}

	if uc.redisClient != nil {
		uc.redisClient.Set(ctx, likeCountKey(songID), count, 0)
	}
	return count, nil
}

func (uc *interactionUseCase) GetLikedSongs(userID string, limit, offset int) ([]*entity.Song, error) {
	songs, err := uc.songRepo.GetLikedSongs(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, song := range songs {
		song.AudioURL = uc.storage.ObjectURL(song.AudioKey)
		song.CoverURL = uc.storage.ObjectURL(song.CoverKey)
	}
	return songs, nil
}

// PlaySong increments the play counter for a song.
func (uc *interactionUseCase) PlaySong(songID string) (int64, error) {
	exists, err := uc.songRepo.SongExists(songID)
	if err != nil || !exists {
		return 0, fmt.Errorf("song not found")
	}

	if err := uc.songRepo.IncrementPlays(songID); err != nil {
		uc.logger.Error("Failed to increment plays for %s: %v", songID, err)
		return 0, fmt.Errorf("failed to record play")
	}

	if uc.redisClient != nil {
		ctx := context.Background()
		count, err := uc.redisClient.Incr(ctx, playCountKey(songID)).Result()
		if err == nil {
			if count == 1 {
				// Fresh key after a cache flush: backfill from the column
				// so the reported total does not restart at 1.
				if song, gerr := uc.songRepo.GetByID(songID); gerr == nil && int64(song.Plays) > count {
					uc.redisClient.Set(ctx, playCountKey(songID), int64(song.Plays), 0)
					return int64(song.Plays), nil
				}
			}
			return count, nil
		}
	}

	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return 0, nil
	}
	return int64(song.Plays), nil
}
