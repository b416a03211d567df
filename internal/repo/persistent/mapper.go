package persistent

import (
	"songhub/internal/entity"
	"songhub/internal/model"
)

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}
	return &entity.Admin{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}
	return &model.AdminModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCreatorEntity(m *model.CreatorModel) *entity.Creator {
	if m == nil {
		return nil
	}
	return &entity.Creator{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCreatorModel(e *entity.Creator) *model.CreatorModel {
	if e == nil {
		return nil
	}
	return &model.CreatorModel{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToEndUserEntity(m *model.EndUserModel) *entity.EndUser {
	if m == nil {
		return nil
	}
	return &entity.EndUser{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Phone:     m.Phone,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToEndUserModel(e *entity.EndUser) *model.EndUserModel {
	if e == nil {
		return nil
	}
	return &model.EndUserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Phone:     e.Phone,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToRoleEntity(m *model.RoleModel) *entity.Role {
	if m == nil {
		return nil
	}
	return &entity.Role{
		ID:   m.ID,
		Name: entity.RoleName(m.Name),
	}
}

func ToGenreEntity(m *model.GenreModel) *entity.Genre {
	if m == nil {
		return nil
	}
	return &entity.Genre{
		ID:   m.ID,
		Name: m.Name,
	}
}

func ToSongEntity(m *model.SongModel) *entity.Song {
	if m == nil {
		return nil
	}
	song := &entity.Song{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Description: m.Description,
		AudioKey:    m.AudioKey,
		CoverKey:    m.CoverKey,
		Plays:       m.Plays,
		Likes:       m.Likes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.GenreID != nil {
		song.GenreID = *m.GenreID
	}
	if m.Genre != nil {
		song.GenreName = m.Genre.Name
	}
	return song
}

func ToSongModel(e *entity.Song) *model.SongModel {
	if e == nil {
		return nil
	}
	song := &model.SongModel{
		ID:          e.ID,
		CreatorID:   e.CreatorID,
		Title:       e.Title,
		Description: e.Description,
		AudioKey:    e.AudioKey,
		CoverKey:    e.CoverKey,
		Plays:       e.Plays,
		Likes:       e.Likes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.GenreID != "" {
		genreID := e.GenreID
		song.GenreID = &genreID
	}
	return song
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}
	playlist := &entity.Playlist{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if len(m.Songs) > 0 {
		playlist.Songs = make([]entity.Song, 0, len(m.Songs))
		for i := range m.Songs {
			// A join row whose song did not load (deleted since it was
			// added) would map to an empty entry.
			if m.Songs[i].Song.ID == "" {
				continue
			}
			playlist.Songs = append(playlist.Songs, *ToSongEntity(&m.Songs[i].Song))
		}
	}
	return playlist
}

func ToSongLikeEntity(m *model.SongLikeModel) *entity.SongLike {
	if m == nil {
		return nil
	}
	return &entity.SongLike{
		ID:        m.ID,
		UserID:    m.UserID,
		SongID:    m.SongID,
		CreatedAt: m.CreatedAt,
	}
}
