package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"Lee_Blog/internal/model"
)

func TestFollowIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	makeUser(t, db, "leo")
	ctx := context.Background()

	changed, err := svc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)
	require.True(t, changed)

	// 重复关注只留一条记录
	changed, err = svc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)
	require.False(t, changed)
	require.EqualValues(t, 1, countRows(t, db, &model.Follow{}))

	// 真正变更才写 outbox
	require.EqualValues(t, 1, countRows(t, db, &model.FollowOutbox{}))
}

func TestSelfFollowIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "leo")

	changed, err := svc.Follow(context.Background(), user.ID, "leo")
	require.NoError(t, err)
	require.False(t, changed)
	require.EqualValues(t, 0, countRows(t, db, &model.Follow{}))
}

func TestUnfollow(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	makeUser(t, db, "leo")
	ctx := context.Background()

	// 不存在的关系取关是无操作
	changed, err := svc.Unfollow(ctx, user.ID, "leo")
	require.NoError(t, err)
	require.False(t, changed)

	_, err = svc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)

	changed, err = svc.Unfollow(ctx, user.ID, "leo")
	require.NoError(t, err)
	require.True(t, changed)
	require.EqualValues(t, 0, countRows(t, db, &model.Follow{}))

	// follow + unfollow 各一条事件
	require.EqualValues(t, 2, countRows(t, db, &model.FollowOutbox{}))
}

func TestOutboxPayloadCarriesEventType(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	author := makeUser(t, db, "leo")
	ctx := context.Background()

	_, err := svc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)
	_, err = svc.Unfollow(ctx, user.ID, "leo")
	require.NoError(t, err)

	var rows []model.FollowOutbox
	require.NoError(t, db.Order("id ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	// payload 本身要能区分关注/取关，投递到 kafka 后 outbox 表就不在了
	for i, want := range []string{"follow", "unfollow"} {
		var body struct {
			Event    string `json:"event"`
			Follower uint64 `json:"follower"`
			Author   uint64 `json:"author"`
		}
		require.NoError(t, json.Unmarshal([]byte(rows[i].Payload), &body))
		require.Equal(t, want, body.Event)
		require.Equal(t, user.ID, body.Follower)
		require.Equal(t, author.ID, body.Author)
	}
}

func TestFollowUnknownAuthor(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	ctx := context.Background()

	_, err := svc.Follow(ctx, user.ID, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Unfollow(ctx, user.ID, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIsFollowing(t *testing.T) {
	db := newTestDB(t)
	svc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	author := makeUser(t, db, "leo")
	ctx := context.Background()

	ok, err := svc.IsFollowing(ctx, user.ID, author.ID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)

	ok, err = svc.IsFollowing(ctx, user.ID, author.ID)
	require.NoError(t, err)
	require.True(t, ok)
}
