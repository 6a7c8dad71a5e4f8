package util

import constant "github.com/papermapper/papermapper/internal/constant"

func NormalizeListRange(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > int(constant.DefaultPageSize) {
		limit = int(constant.DefaultPageSize)
	}
	return skip, limit
}
