package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"songhub/internal/model"
	"songhub/pkg/cache"
	"songhub/pkg/config"
	"songhub/pkg/database"
	"songhub/pkg/logger"
	"songhub/pkg/s3"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with demo creators, listeners, songs, likes and
// playlists. Audio is generated in-process, covers come from picsum.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v", err)
		redisClient = nil
	}

	if err := seedDatabase(db, s3Client, redisClient, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

var demoCreators = []struct {
	name  string
	email string
}{
	{"Luna Waves", "luna@demo.songhub.local"},
	{"The Basement Trio", "basement@demo.songhub.local"},
	{"DJ Halcyon", "halcyon@demo.songhub.local"},
}

var demoUsers = []struct {
	username string
	email    string
	phone    string
}{
	{"alice_listens", "alice@demo.songhub.local", "1000000001"},
	{"bob_beats", "bob@demo.songhub.local", "1000000002"},
	{"carol_vibes", "carol@demo.songhub.local", "1000000003"},
}

var demoTitles = []struct {
	title string
	genre string
}{
	{"Midnight Drive", "Electronic"},
	{"Paper Planes Over Water", "Pop"},
	{"Rust and Rain", "Rock"},
	{"Blue Hour", "Jazz"},
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, redisClient *redis.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	creatorIDs := make([]string, 0, len(demoCreators))
	for _, c := range demoCreators {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

		var existing model.CreatorModel
		result := db.Where("email = ? OR name = ?", c.email, c.name).First(&existing)
		if result.Error == nil {
			log.Info("Creator %s already exists, skipping", c.name)
			creatorIDs = append(creatorIDs, existing.ID)
			continue
		}

		creator := &model.CreatorModel{
			Name:     c.name,
			Email:    c.email,
			Password: string(hashedPassword),
		}
		if err := db.Create(creator).Error; err != nil {
			log.Error("Failed to create creator %s: %v", c.name, err)
			continue
		}
		log.Info("Created creator: %s (%s)", c.name, c.email)
		creatorIDs = append(creatorIDs, creator.ID)
	}

	userIDs := make([]string, 0, len(demoUsers))
	for _, u := range demoUsers {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

		var existing model.EndUserModel
		result := db.Where("email = ? OR username = ?", u.email, u.username).First(&existing)
		if result.Error == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		user := &model.EndUserModel{
			Username: u.username,
			Email:    u.email,
			Phone:    u.phone,
			Password: string(hashedPassword),
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", u.username, err)
			continue
		}
		log.Info("Created user: %s (%s)", u.username, u.email)
		userIDs = append(userIDs, user.ID)
	}

	songIDs := make([]string, 0)
	for i, creatorID := range creatorIDs {
		for j, t := range demoTitles {
			if (i+j)%2 == 0 {
				continue
			}
			songID, err := createDemoSong(db, s3Client, httpClient, creatorID, t.title, t.genre, log)
			if err != nil {
				log.Error("Failed to create song %q: %v", t.title, err)
				continue
			}
			songIDs = append(songIDs, songID)
			time.Sleep(200 * time.Millisecond)
		}
	}

	for i, userID := range userIDs {
		for j, songID := range songIDs {
			if (i+j)%2 != 0 {
				continue
			}

			var existing model.SongLikeModel
			result := db.Where("user_id = ? AND song_id = ?", userID, songID).First(&existing)
			if result.Error == nil {
				continue
			}

			like := &model.SongLikeModel{UserID: userID, SongID: songID}
			if err := db.Create(like).Error; err != nil {
				log.Error("Failed to create like: %v", err)
				continue
			}
			db.Model(&model.SongModel{}).Where("id = ?", songID).
				Update("likes", gorm.Expr("likes + 1"))

			if redisClient != nil {
				redisClient.Incr(context.Background(), fmt.Sprintf("song:likes:%s", songID))
			}
		}
	}
	log.Info("Created demo likes")

	for i, userID := range userIDs {
		playlist := &model.PlaylistModel{
			Name:   fmt.Sprintf("Favorites %d", i+1),
			UserID: userID,
		}
		var existing model.PlaylistModel
		result := db.Where("user_id = ? AND name = ?", userID, playlist.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if err := db.Create(playlist).Error; err != nil {
			log.Error("Failed to create playlist: %v", err)
			continue
		}
		for j, songID := range songIDs {
			if (i+j)%3 != 0 {
				continue
			}
			entry := &model.PlaylistSongModel{PlaylistID: playlist.ID, SongID: songID}
			if err := db.Create(entry).Error; err != nil {
				log.Error("Failed to add song to playlist: %v", err)
			}
		}
	}
	log.Info("Created demo playlists")

	return nil
}

func createDemoSong(db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, creatorID, title, genreName string, log *logger.Logger) (string, error) {
	audioKey := s3.ObjectKey(s3.AudioPrefix, title+".wav")
	if _, err := s3Client.UploadFile(audioKey, bytes.NewReader(sineWAV(2)), "audio/wav"); err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}

	coverKey := ""
	resp, err := httpClient.Get("https://picsum.photos/300")
	if err == nil {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusOK {
			imageData, err := io.ReadAll(resp.Body)
			if err == nil && len(imageData) > 0 {
				coverKey = s3.ObjectKey(s3.CoverPrefix, title+".jpg")
				if _, err := s3Client.UploadFile(coverKey, bytes.NewReader(imageData), "image/jpeg"); err != nil {
					log.Error("Failed to upload cover for %q: %v", title, err)
					coverKey = ""
				}
			}
		}
	} else {
		log.Error("Failed to fetch cover image: %v", err)
	}

	var genreID *string
	var genre model.GenreModel
	if err := db.Where("name = ?", genreName).First(&genre).Error; err == nil {
		genreID = &genre.ID
	}

	song := &model.SongModel{
		CreatorID:   creatorID,
		Title:       title,
		Description: fmt.Sprintf("Demo track %q", title),
		AudioKey:    audioKey,
		CoverKey:    coverKey,
		GenreID:     genreID,
	}
	if err := db.Create(song).Error; err != nil {
		return "", fmt.Errorf("failed to create song: %w", err)
	}

	log.Info("Created song: %s", title)
	return song.ID, nil
}

// sineWAV renders a mono 8kHz 440Hz tone of the given duration in seconds
// as a complete WAV file, so seeding needs no audio assets on disk.
func sineWAV(seconds int) []byte {
	const sampleRate = 8000
	samples := sampleRate * seconds

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+samples))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint16(1))
	binary.Write(&buf, binary.LittleEndian, uint16(8))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(samples))

	for i := 0; i < samples; i++ {
		v := math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
		buf.WriteByte(byte(128 + v*100))
	}
	return buf.Bytes()
}
