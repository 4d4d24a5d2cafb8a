package cache

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// BuildKey строит детерминированный ключ кеша из параметров запроса.
// Ресурс нормализуется, список include сортируется и дедуплицируется:
// запросы, отличающиеся составом include, кешируются раздельно
// (частичной сборки ответа из кеша нет).
func BuildKey(start domain.CalendarDate, days int, resource string, includes []string) string {
	normalized := domain.NormalizeResource(resource)

	seen := make(map[string]struct{}, len(includes))
	cleaned := make([]string, 0, len(includes))
	for _, inc := range includes {
		inc = strings.TrimSpace(strings.ToLower(inc))
		if inc == "" {
			continue
		}
		if _, ok := seen[inc]; ok {
			continue
		}
		seen[inc] = struct{}{}
		cleaned = append(cleaned, inc)
	}
	sort.Strings(cleaned)

	return fmt.Sprintf("%s|%d|%s|%s", start, days, normalized, strings.Join(cleaned, ","))
}

// BuildDayKey строит ключ кеша для однодневного запроса доступности
func BuildDayKey(date domain.CalendarDate, resource string) string {
	return BuildKey(date, 1, resource, nil)
}
