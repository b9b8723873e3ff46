package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeyToPath(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"MONGO_URI", "mongo.uri"},
		{"MONGO_DATABASE", "mongo.database"},
		{"REDIS_ADDR", "redis.addr"},
		{"SECRETKEY_JWT", "secretkey.jwt"},
		{"FRONTEND_BASE_URL", "frontend.baseurl"},
		{"PORT", "port"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, EnvKeyToPath(c.key), c.key)
	}
}
