package domain

import (
	"net/url"
	"strings"
)

// IsExternalSrc сообщает, что src уже является абсолютной ссылкой http(s),
// а не ключом объекта в хранилище изображений
func IsExternalSrc(src string) bool {
	u, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ObjectKey нормализует ключ объекта: без ведущего слеша
func ObjectKey(src string) string {
	return strings.TrimLeft(strings.TrimSpace(src), "/")
}
