package service

import (
	"Agora/models"
	"Agora/types"

	"github.com/google/uuid"
)

func categoryBrief(c *models.Category) *types.CategoryBrief {
	if c == nil {
		return nil
	}
	return &types.CategoryBrief{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon}
}

func userRef(users map[uuid.UUID]types.UserInfo, id *uuid.UUID) *types.UserInfo {
	if id == nil {
		return nil
	}
	info, ok := users[*id]
	if !ok {
		return nil
	}
	return &info
}

func topicDetails(t *models.Topic, cats map[uuid.UUID]*models.Category, users map[uuid.UUID]types.UserInfo) *types.TopicWithDetails {
	author := t.UserID
	return &types.TopicWithDetails{
		ID:              t.ID,
		CategoryID:      t.CategoryID,
		Title:           t.Title,
		Slug:            t.Slug,
		UserID:          t.UserID,
		Views:           t.Views,
		RepliesCount:    t.RepliesCount,
		IsPinned:        t.IsPinned,
		IsLocked:        t.IsLocked,
		IsSolved:        t.IsSolved,
		LastReplyAt:     t.LastReplyAt,
		LastReplyUserID: t.LastReplyUserID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Category:        categoryBrief(cats[t.CategoryID]),
		Author:          userRef(users, &author),
		LastReplyUser:   userRef(users, t.LastReplyUserID),
	}
}

func replyDetails(r *models.Reply, parentAuthors map[uuid.UUID]uuid.UUID, users map[uuid.UUID]types.UserInfo) *types.ReplyWithDetails {
	author := r.UserID
	d := &types.ReplyWithDetails{
		ID:         r.ID,
		TopicID:    r.TopicID,
		UserID:     r.UserID,
		Content:    r.Content,
		IsSolution: r.IsSolution,
		LikesCount: r.LikesCount,
		ReplyToID:  r.ReplyToID,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
		Author:     userRef(users, &author),
	}
	if r.ReplyToID != nil {
		if parentAuthor, ok := parentAuthors[*r.ReplyToID]; ok {
			d.ReplyToUser = userRef(users, &parentAuthor)
		}
	}
	return d
}

// topicUserIDs 作者和最后回复人
func topicUserIDs(topics []*models.Topic) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(topics)*2)
	for _, t := range topics {
		ids = append(ids, t.UserID)
		if t.LastReplyUserID != nil {
			ids = append(ids, *t.LastReplyUserID)
		}
	}
	return ids
}
