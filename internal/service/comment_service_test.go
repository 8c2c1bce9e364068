package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Lee_Blog/internal/form"
	"Lee_Blog/internal/model"
)

func TestAddComment(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	author := makeUser(t, db, "leo")
	reader := makeUser(t, db, "vera")
	post := makePost(t, db, author, "hello", time.Now())

	errs, err := svc.Add(reader.ID, post.ID, &form.CommentForm{Text: "nice one"})
	require.NoError(t, err)
	require.Nil(t, errs)

	comments, err := svc.ListForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, reader.ID, comments[0].AuthorID)
	require.Equal(t, post.ID, comments[0].PostID)
}

func TestAddCommentEmptyTextPersistsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	author := makeUser(t, db, "leo")
	post := makePost(t, db, author, "hello", time.Now())

	errs, err := svc.Add(author.ID, post.ID, &form.CommentForm{Text: ""})
	require.NoError(t, err)
	require.Contains(t, errs, "text")
	require.EqualValues(t, 0, countRows(t, db, &model.Comment{}))
}

func TestAddCommentUnknownPost(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	author := makeUser(t, db, "leo")

	_, err := svc.Add(author.ID, 999, &form.CommentForm{Text: "hi"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListForPostNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(db)
	author := makeUser(t, db, "leo")
	post := makePost(t, db, author, "hello", time.Now())

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		c := &model.Comment{
			Text:      text,
			AuthorID:  author.ID,
			PostID:    post.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(c).Error)
	}

	comments, err := svc.ListForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "third", comments[0].Text)
	require.Equal(t, "first", comments[2].Text)
}
