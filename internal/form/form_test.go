package form

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubGroups map[uint64]bool

func (s stubGroups) ExistsByID(id uint64) (bool, error) {
	return s[id], nil
}

func TestPostFormValidate(t *testing.T) {
	groups := stubGroups{1: true}

	t.Run("empty text rejected", func(t *testing.T) {
		f := &PostForm{Text: ""}
		groupID, errs, err := f.Validate(groups)
		require.NoError(t, err)
		require.Nil(t, groupID)
		require.Contains(t, errs, "text")
	})

	t.Run("text only is valid", func(t *testing.T) {
		f := &PostForm{Text: "hello"}
		groupID, errs, err := f.Validate(groups)
		require.NoError(t, err)
		require.Empty(t, errs)
		require.Nil(t, groupID)
	})

	t.Run("known group resolved", func(t *testing.T) {
		f := &PostForm{Text: "hello", Group: "1"}
		groupID, errs, err := f.Validate(groups)
		require.NoError(t, err)
		require.Empty(t, errs)
		require.NotNil(t, groupID)
		require.Equal(t, uint64(1), *groupID)
	})

	t.Run("unknown group rejected", func(t *testing.T) {
		f := &PostForm{Text: "hello", Group: "42"}
		_, errs, err := f.Validate(groups)
		require.NoError(t, err)
		require.Contains(t, errs, "group")
	})

	t.Run("garbage group rejected", func(t *testing.T) {
		f := &PostForm{Text: "hello", Group: "not-a-number"}
		_, errs, err := f.Validate(groups)
		require.NoError(t, err)
		require.Contains(t, errs, "group")
	})
}

func TestCommentFormValidate(t *testing.T) {
	require.Contains(t, (&CommentForm{Text: ""}).Validate(), "text")
	require.Nil(t, (&CommentForm{Text: "nice"}).Validate())
}
