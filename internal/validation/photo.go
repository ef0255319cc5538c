package validation

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/h2non/filetype"
)

// PhotoValidator проверяет ссылки на фото-подтверждения.
// Ссылка - либо непрозрачный идентификатор (имя файла, URL), либо data URL
// с base64-содержимым, которое обязано быть изображением.
type PhotoValidator struct {
	maxBytes int64
}

func NewPhotoValidator(maxSizeMB int64) *PhotoValidator {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &PhotoValidator{maxBytes: maxSizeMB * 1024 * 1024}
}

// Validate возвращает ошибку, если фото отсутствует или data URL не содержит изображение.
func (p *PhotoValidator) Validate(fieldName, ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("%s обязательно", fieldName)
	}
	if !strings.HasPrefix(ref, "data:") {
		return nil
	}

	header, payload, ok := strings.Cut(ref, ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return fmt.Errorf("%s: ожидается data URL в base64", fieldName)
	}

	// base64 раздувает данные примерно на треть
	if int64(len(payload))*3/4 > p.maxBytes {
		return fmt.Errorf("%s: размер превышает лимит %d байт", fieldName, p.maxBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%s: некорректный base64: %w", fieldName, err)
	}
	if !filetype.IsImage(raw) {
		return fmt.Errorf("%s: содержимое не является изображением", fieldName)
	}
	return nil
}
