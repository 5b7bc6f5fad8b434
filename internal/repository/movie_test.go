package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		name          string
		sortBy        string
		sortDirection string
		want          string
	}{
		{"默认升序", "title", "", "title ASC"},
		{"显式降序", "title", "desc", "title DESC"},
		{"忽略方向大小写", "genre", "DESC", "genre DESC"},
		{"非法方向回退升序", "director", "sideways", "director ASC"},
		{"驼峰参数映射到列名", "releaseYear", "desc", "release_year DESC"},
		{"未知列回退 id 升序", "rating; DROP TABLE movies", "desc", "id ASC"},
		{"空列回退 id 升序", "", "", "id ASC"},
		{"蛇形写法不在白名单内", "release_year", "asc", "id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderClause(tt.sortBy, tt.sortDirection))
		})
	}
}
