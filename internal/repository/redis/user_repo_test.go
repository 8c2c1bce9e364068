package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// key 前缀是线上数据的契约，改了会让存量登录态全部失效
func TestUserTokenKey(t *testing.T) {
	require.Equal(t, "login:user:token:42", userTokenKey(42))
}
