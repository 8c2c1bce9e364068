package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"Lee_Blog/internal/model"
)

func TestOutboxRelayerDrain(t *testing.T) {
	db := newTestDB(t)
	followSvc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	makeUser(t, db, "leo")
	ctx := context.Background()

	_, err := followSvc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)

	var sent []model.FollowOutbox
	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.FollowOutbox) error {
		sent = append(sent, *ob)
		return nil
	})
	relayer.drainOnce(ctx)

	require.Len(t, sent, 1)
	require.Equal(t, "follow", sent[0].EventType)
	require.Equal(t, user.ID, sent[0].Follower)

	// 已投递的不会再被捞出来
	relayer.drainOnce(ctx)
	require.Len(t, sent, 1)

	var ob model.FollowOutbox
	require.NoError(t, db.First(&ob, sent[0].ID).Error)
	require.EqualValues(t, 1, ob.Status)
}

func TestOutboxRelayerRetryOnFailure(t *testing.T) {
	db := newTestDB(t)
	followSvc := NewFollowService(db)
	user := makeUser(t, db, "vera")
	makeUser(t, db, "leo")
	ctx := context.Background()

	_, err := followSvc.Follow(ctx, user.ID, "leo")
	require.NoError(t, err)

	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.FollowOutbox) error {
		return errors.New("broker down")
	})
	relayer.drainOnce(ctx)

	var ob model.FollowOutbox
	require.NoError(t, db.Where("event_type = ?", "follow").First(&ob).Error)
	require.EqualValues(t, 2, ob.Status)
	require.Equal(t, 1, ob.Retry)
}
