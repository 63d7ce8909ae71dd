package shared

import (
	"context"
	"fmt"
	"math"
	"strings"

	"tm30/shared/cache"
	"tm30/shared/dto"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FilterByRoom builds the (hotel_id, room_number) filter every room-scoped
// statement uses.
func FilterByRoom(hotelID, roomNumber, fieldHotelID, fieldRoomNumber, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldHotelID,
				Value:    hotelID,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				Field:    fieldRoomNumber,
				Value:    roomNumber,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func FilterByField(value any, field, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return fmt.Sprintf("%s:%d:%d:%s:%s:%s:%v", prefix, params.Page, params.Limit, params.SortBy, params.SortDir, where, args)
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
