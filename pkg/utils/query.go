package utils

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseList lê um parâmetro que pode vir repetido (?region=a&region=b) ou
// separado por vírgulas (?region=a,b). Valores vazios e repetidos são descartados.
func ParseList(values url.Values, key string) []string {
	var list []string
	seen := make(map[string]struct{})

	for _, raw := range values[key] {
		for _, item := range strings.Split(raw, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if _, ok := seen[item]; ok {
				continue
			}
			seen[item] = struct{}{}
			list = append(list, item)
		}
	}

	return list
}

// ParseIntList é ParseList para valores inteiros
func ParseIntList(values url.Values, key string) ([]int, error) {
	items := ParseList(values, key)
	if len(items) == 0 {
		return nil, nil
	}

	list := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, errors.Wrapf(err, "valor inválido para %s: %q", key, item)
		}
		list = append(list, n)
	}

	return list, nil
}

// ParseInt lê um inteiro opcional; ausente retorna fallback
func ParseInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "valor inválido para %s: %q", key, raw)
	}
	return n, nil
}
