package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/repository/mysql"
)

// 每个测试一个独立的内存库，cache=shared 让连接池里的连接看到同一份数据。
// sqlite 默认不执行外键动作，_foreign_keys 打开后 SET NULL / CASCADE 才生效。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

func makeUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Password: "x",
		Email:    username + "@example.com",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func makeGroup(t *testing.T, db *gorm.DB, slug string) *model.Group {
	t.Helper()
	g := &model.Group{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "test group",
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func makePost(t *testing.T, db *gorm.DB, author *model.User, text string, createdAt time.Time) *model.Post {
	t.Helper()
	p := &model.Post{
		Text:      text,
		AuthorID:  author.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
