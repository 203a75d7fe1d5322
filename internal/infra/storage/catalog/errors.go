package catalog

import "errors"

var (
	// ErrReadCatalog возвращается, когда файл каталога не удалось прочитать
	ErrReadCatalog = errors.New("catalog.storage: failed to read catalog")

	// ErrDecodeCatalog возвращается при ошибке разбора YAML
	ErrDecodeCatalog = errors.New("catalog.storage: failed to decode catalog")

	// ErrInvalidCatalog возвращается, когда данные каталога нарушают инварианты
	ErrInvalidCatalog = errors.New("catalog.storage: invalid catalog")
)
